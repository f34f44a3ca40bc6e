package render

import (
	"bytes"
	"context"
	"html/template"
	"sort"

	"github.com/brochure-dev/brochure/internal/content"
)

// Document names, one per section, fetched from the content source as
// {name}.json.
const (
	DocSite     = "site"
	DocAbout    = "about"
	DocMenu     = "menu"
	DocServices = "services"
	DocContact  = "contact"
)

// execute runs a named fragment template into a buffer so the target gets
// the whole fragment at once.
func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

type heroView struct {
	Title    string
	Tagline  string
	Subtitle string
}

type footerView struct {
	Copyright string
}

// renderSite fills the brand, hero, and footer targets from the site
// document. The site name drives the hero title.
func renderSite(ctx context.Context, store *content.Store, page *Page) error {
	doc, ok := store.Get(ctx, DocSite)
	if !ok {
		return nil
	}

	brand, err := execute("brand", content.Text(doc, "name", ""))
	if err != nil {
		return err
	}

	hero, err := execute("hero", heroView{
		Title:    content.Text(doc, "name", "Welcome"),
		Tagline:  content.Text(doc, "tagline", ""),
		Subtitle: content.Text(doc, "subtitle", ""),
	})
	if err != nil {
		return err
	}

	footer, err := execute("footer", footerView{
		Copyright: content.Text(doc, "copyright", ""),
	})
	if err != nil {
		return err
	}

	page.Set(TargetBrand, brand)
	page.Set(TargetHero, hero)
	page.Set(TargetFooter, footer)
	return nil
}

type featureView struct {
	Icon string
	Text string
}

type aboutView struct {
	Title      string
	Paragraphs []template.HTML
	Features   []featureView
}

func renderAbout(ctx context.Context, store *content.Store, page *Page) error {
	doc, ok := store.Get(ctx, DocAbout)
	if !ok {
		return nil
	}

	v := aboutView{Title: content.Text(doc, "title", "About Us")}
	for _, p := range content.Strings(doc, "paragraphs") {
		v.Paragraphs = append(v.Paragraphs, markdownHTML(p))
	}
	for _, f := range content.List(doc, "features") {
		v.Features = append(v.Features, featureView{
			Icon: content.Text(f, "icon", ""),
			Text: content.Text(f, "text", ""),
		})
	}

	frag, err := execute("about", v)
	if err != nil {
		return err
	}
	page.Set(TargetAbout, frag)
	return nil
}

type menuItemView struct {
	Name        string
	Description string
}

type categoryView struct {
	Name  string
	Items []menuItemView
}

type menuView struct {
	Title      string
	Categories []categoryView
	Note       template.HTML
}

func renderMenu(ctx context.Context, store *content.Store, page *Page) error {
	doc, ok := store.Get(ctx, DocMenu)
	if !ok {
		return nil
	}

	v := menuView{Title: content.Text(doc, "title", "Our Menu")}
	for _, c := range content.List(doc, "categories") {
		cat := categoryView{Name: content.Text(c, "name", "")}
		for _, item := range content.List(c, "items") {
			cat.Items = append(cat.Items, menuItemView{
				Name:        content.Text(item, "name", ""),
				Description: content.Text(item, "description", ""),
			})
		}
		v.Categories = append(v.Categories, cat)
	}
	if note := content.Text(doc, "note", ""); note != "" {
		v.Note = markdownHTML(note)
	}

	frag, err := execute("menu", v)
	if err != nil {
		return err
	}
	page.Set(TargetMenu, frag)
	return nil
}

type serviceView struct {
	Icon        string
	Name        string
	Description string
}

type servicesView struct {
	Title string
	Items []serviceView
}

func renderServices(ctx context.Context, store *content.Store, page *Page) error {
	doc, ok := store.Get(ctx, DocServices)
	if !ok {
		return nil
	}

	v := servicesView{Title: content.Text(doc, "title", "Services")}
	for _, item := range content.List(doc, "items") {
		v.Items = append(v.Items, serviceView{
			Icon:        content.Text(item, "icon", ""),
			Name:        content.Text(item, "name", ""),
			Description: content.Text(item, "description", ""),
		})
	}

	frag, err := execute("services", v)
	if err != nil {
		return err
	}
	page.Set(TargetServices, frag)
	return nil
}

type detailView struct {
	Icon  string
	Label string
	Value string
	Link  template.URL
}

type contactView struct {
	Title     string
	Details   []detailView
	CTAText   string
	CTAButton string
	CTALink   template.URL
}

// preferredDetailOrder fixes the display order for well-known contact
// detail keys. JSON objects carry no ordering, so anything else follows
// alphabetically to keep the output deterministic.
var preferredDetailOrder = []string{"phone", "email", "address", "hours"}

func detailKeys(details content.Document) []string {
	seen := make(map[string]bool, len(details))
	var keys []string
	for _, k := range preferredDetailOrder {
		if _, ok := details[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range details {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func renderContact(ctx context.Context, store *content.Store, page *Page) error {
	doc, ok := store.Get(ctx, DocContact)
	if !ok {
		return nil
	}

	v := contactView{
		Title:     content.Text(doc, "title", "Contact Us"),
		CTAText:   content.Text(doc, "cta_text", ""),
		CTAButton: content.Text(doc, "cta_button", ""),
		CTALink:   template.URL(content.Text(doc, "details.phone.link", "#contact")),
	}

	if details, ok := content.Child(doc, "details"); ok {
		for _, key := range detailKeys(details) {
			d, ok := content.Child(details, key)
			if !ok {
				continue
			}
			v.Details = append(v.Details, detailView{
				Icon:  content.Text(d, "icon", ""),
				Label: content.Text(d, "label", ""),
				Value: content.Text(d, "value", ""),
				Link:  template.URL(content.Text(d, "link", "")),
			})
		}
	}

	frag, err := execute("contact", v)
	if err != nil {
		return err
	}
	page.Set(TargetContact, frag)
	return nil
}
