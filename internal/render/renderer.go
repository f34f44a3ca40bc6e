package render

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/brochure-dev/brochure/internal/content"
)

// RenderFunc fills one region of the page from one content document. When
// the document cannot be loaded the renderer leaves its target untouched
// and returns nil; an error is returned only for template-execution
// faults, never for missing content.
type RenderFunc func(ctx context.Context, store *content.Store, page *Page) error

// Section pairs a document name with its renderer.
type Section struct {
	Doc    string
	Render RenderFunc
}

// Sections lists every section renderer in skeleton order. The renderers
// are independent of each other; order matters only for progress output.
var Sections = []Section{
	{DocSite, renderSite},
	{DocAbout, renderAbout},
	{DocMenu, renderMenu},
	{DocServices, renderServices},
	{DocContact, renderContact},
}

// RenderAll launches every section renderer concurrently and joins on all
// of them, so one slow document does not delay the other sections. onDone,
// if non-nil, is called as each section settles (from the renderer's
// goroutine). The first template-execution error, if any, is returned
// after the join.
func RenderAll(ctx context.Context, store *content.Store, page *Page, onDone func(doc string)) error {
	var g errgroup.Group
	for _, s := range Sections {
		s := s
		g.Go(func() error {
			err := s.Render(ctx, store, page)
			if onDone != nil {
				onDone(s.Doc)
			}
			return err
		})
	}
	return g.Wait()
}
