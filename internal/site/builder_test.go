package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brochure-dev/brochure/internal/content"
)

// writeContent populates a data directory with the given documents.
func writeContent(t *testing.T, dir string, docs map[string]string) {
	t.Helper()
	for name, raw := range docs {
		if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func fullContent() map[string]string {
	return map[string]string{
		"site":     `{"name": "Bella Vista", "tagline": "Fine dining", "copyright": "© Bella Vista"}`,
		"about":    `{"title": "Our Story", "paragraphs": ["Opened in 1987."]}`,
		"menu":     `{"categories": [{"name": "Mains", "items": [{"name": "Curry", "description": "Spicy"}]}]}`,
		"services": `{"items": [{"icon": "🎉", "name": "Events", "description": "Back room"}]}`,
		"contact":  `{"details": {"phone": {"label": "Phone", "value": "123", "link": "tel:123"}}, "cta_button": "Call"}`,
	}
}

func TestBuildWritesSite(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := t.TempDir()
	writeContent(t, dataDir, fullContent())

	b := NewBuilder(content.NewStore(content.DirSource{Dir: dataDir}), outputDir)
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	for _, f := range []string{"index.html", "style.css", "script.js"} {
		if _, err := os.Stat(filepath.Join(outputDir, f)); err != nil {
			t.Errorf("expected output file %s: %v", f, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)

	for _, want := range []string{
		"<title>Bella Vista</title>",
		`id="navbar"`,
		`id="nav-toggle"`,
		"Fine dining",
		"Opened in 1987.",
		"Curry",
		"Spicy",
		"Events",
		`href="tel:123"`,
		"© Bella Vista",
		`<script src="script.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}

func TestBuildMissingSectionStaysBlank(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := t.TempDir()
	docs := fullContent()
	delete(docs, "menu")
	writeContent(t, dataDir, docs)

	b := NewBuilder(content.NewStore(content.DirSource{Dir: dataDir}), outputDir)
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build should not fail on missing content: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)

	// The menu container is part of the skeleton and stays, empty.
	if !strings.Contains(html, `id="menu"`) {
		t.Error("menu container should remain in the skeleton")
	}
	if strings.Contains(html, "menu-category") {
		t.Error("no menu content should be rendered")
	}
	// The other sections are unaffected.
	if !strings.Contains(html, "Events") {
		t.Error("services section should still render")
	}
}

func TestBuildNoContentAtAll(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := t.TempDir()

	b := NewBuilder(content.NewStore(content.DirSource{Dir: dataDir}), outputDir)
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build with no documents should still emit the skeleton: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "<title>Welcome</title>") {
		t.Error("title should fall back to Welcome with no site document")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	dataDir := t.TempDir()
	writeContent(t, dataDir, fullContent())

	var outputs []string
	for i := 0; i < 2; i++ {
		outputDir := t.TempDir()
		b := NewBuilder(content.NewStore(content.DirSource{Dir: dataDir}), outputDir)
		if err := b.Build(context.Background()); err != nil {
			t.Fatalf("Build error: %v", err)
		}
		raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, string(raw))
	}
	if outputs[0] != outputs[1] {
		t.Error("two builds of the same content must produce identical pages")
	}
}

func TestBuildLiveReloadScript(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := t.TempDir()
	writeContent(t, dataDir, fullContent())

	b := NewBuilder(content.NewStore(content.DirSource{Dir: dataDir}), outputDir)
	b.LiveReload = true
	if err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outputDir, "script.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "/livereload") {
		t.Error("watch-mode script should connect to /livereload")
	}
}
