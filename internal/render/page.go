package render

import (
	"html/template"
	"sync"
)

// Target names for the regions of the page skeleton that renderers fill.
// The skeleton owns the containers; renderers only supply their contents.
const (
	TargetBrand    = "brand"
	TargetHero     = "hero"
	TargetAbout    = "about"
	TargetMenu     = "menu"
	TargetServices = "services"
	TargetContact  = "contact"
	TargetFooter   = "footer"
)

// Page collects the rendered fragment for each target. A renderer composes
// its whole fragment off-page and installs it with one Set call, so a
// partially rendered section is never observable. Safe for concurrent use
// by the renderer group.
type Page struct {
	mu        sync.Mutex
	fragments map[string]template.HTML
}

// NewPage returns a Page with every target empty.
func NewPage() *Page {
	return &Page{fragments: make(map[string]template.HTML)}
}

// Set installs the complete fragment for a target, replacing any previous one.
func (p *Page) Set(target string, frag template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fragments[target] = frag
}

// Fragment returns the fragment for a target, or the empty fragment when
// the target was never rendered (its placeholder state).
func (p *Page) Fragment(target string) template.HTML {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fragments[target]
}
