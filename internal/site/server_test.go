package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brochure-dev/brochure/internal/content"
)

func newTestServer(t *testing.T, docs map[string]string) (*httptest.Server, string) {
	t.Helper()
	dataDir := t.TempDir()
	siteDir := t.TempDir()
	writeContent(t, dataDir, docs)

	store := content.NewStore(content.DirSource{Dir: dataDir})
	srv := NewServer(ServerConfig{Port: 0, SiteDir: siteDir}, store, NewReloadHub())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, dataDir
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/healthz")
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("body = %q", body)
	}
}

func TestContentAPI(t *testing.T) {
	ts, _ := newTestServer(t, map[string]string{
		"site": `{"name": "Bella Vista"}`,
	})

	status, body := get(t, ts.URL+"/api/content/site")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if doc["name"] != "Bella Vista" {
		t.Errorf("name = %v, want Bella Vista", doc["name"])
	}
}

func TestContentAPINotFound(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	status, body := get(t, ts.URL+"/api/content/absent")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if !strings.Contains(body, "content not found") {
		t.Errorf("body = %q", body)
	}
}

func TestContentAPIServesSessionCache(t *testing.T) {
	ts, dataDir := newTestServer(t, map[string]string{
		"menu": `{"title": "Our Menu"}`,
	})

	if status, _ := get(t, ts.URL+"/api/content/menu"); status != http.StatusOK {
		t.Fatalf("first fetch failed: %d", status)
	}

	// The store memoizes for its session: a file edit is not observed.
	if err := os.WriteFile(filepath.Join(dataDir, "menu.json"), []byte(`{"title": "Changed"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, body := get(t, ts.URL+"/api/content/menu")
	if !strings.Contains(body, "Our Menu") {
		t.Errorf("second fetch should serve the cached document, got %q", body)
	}
}

func TestContentAPIRetriesAfterFailure(t *testing.T) {
	ts, dataDir := newTestServer(t, map[string]string{
		"about": `{"title": "broken",`,
	})

	if status, _ := get(t, ts.URL+"/api/content/about"); status != http.StatusNotFound {
		t.Fatal("malformed document should be a 404")
	}

	// Fix the document; failures are never cached, so the next call loads it.
	if err := os.WriteFile(filepath.Join(dataDir, "about.json"), []byte(`{"title": "Our Story"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	status, body := get(t, ts.URL+"/api/content/about")
	if status != http.StatusOK {
		t.Fatalf("status after fix = %d, want 200", status)
	}
	if !strings.Contains(body, "Our Story") {
		t.Errorf("body = %q", body)
	}
}

func TestServesStaticSite(t *testing.T) {
	dataDir := t.TempDir()
	siteDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<title>Bella Vista</title>"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := content.NewStore(content.DirSource{Dir: dataDir})
	srv := NewServer(ServerConfig{SiteDir: siteDir}, store, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "Bella Vista") {
		t.Errorf("body = %q", body)
	}
}
