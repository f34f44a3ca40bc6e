package site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/brochure-dev/brochure/internal/content"
	"github.com/brochure-dev/brochure/internal/progress"
	"github.com/brochure-dev/brochure/internal/render"
)

// Builder assembles the static site: it runs every section renderer
// against a content store, injects the fragments into the page skeleton,
// and writes index.html plus its assets to OutputDir.
type Builder struct {
	Store      *content.Store
	OutputDir  string
	LiveReload bool
	Reporter   progress.Reporter
}

// NewBuilder creates a Builder writing to outputDir.
func NewBuilder(store *content.Store, outputDir string) *Builder {
	return &Builder{Store: store, OutputDir: outputDir}
}

// skeletonData carries the rendered fragments into the page skeleton.
type skeletonData struct {
	Brand    template.HTML
	Hero     template.HTML
	About    template.HTML
	Menu     template.HTML
	Services template.HTML
	Contact  template.HTML
	Footer   template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Build renders all sections concurrently, waits for every one of them to
// settle, then writes the page and assets in one pass. A section whose
// document failed to load simply stays empty; Build only fails on template
// or filesystem errors.
func (b *Builder) Build(ctx context.Context) error {
	page := render.NewPage()

	if b.Reporter != nil {
		b.Reporter.Start(len(render.Sections))
	}
	var settled atomic.Int32
	onDone := func(doc string) {
		if b.Reporter != nil {
			b.Reporter.Update(int(settled.Add(1)), "rendered "+doc)
		}
	}

	if err := render.RenderAll(ctx, b.Store, page, onDone); err != nil {
		return fmt.Errorf("rendering sections: %w", err)
	}
	if b.Reporter != nil {
		b.Reporter.Finish()
	}

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return err
	}

	data := skeletonData{
		Brand:    page.Fragment(render.TargetBrand),
		Hero:     page.Fragment(render.TargetHero),
		About:    page.Fragment(render.TargetAbout),
		Menu:     page.Fragment(render.TargetMenu),
		Services: page.Fragment(render.TargetServices),
		Contact:  page.Fragment(render.TargetContact),
		Footer:   page.Fragment(render.TargetFooter),
	}

	f, err := os.Create(filepath.Join(b.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	if err := pageTmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("writing index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(b.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "script.js"), []byte(chromeScript(b.LiveReload)), 0o644); err != nil {
		return err
	}

	return nil
}
