package dev

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verdin-dev/verdin/internal/config"
)

// previewConfig builds a project directory with a prebuilt output dir
// and returns its loaded configuration.
func previewConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfgJSON := `{"name":"t","preview":{"hotReload":true},"static":{"dir":"public"}}`
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfgJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dist := filepath.Join(dir, "dist")
	if err := os.MkdirAll(dist, 0755); err != nil {
		t.Fatal(err)
	}
	page := `<!DOCTYPE html><html><body><div id="app"></div></body></html>`
	if err := os.WriteFile(filepath.Join(dist, "index.html"), []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dist, "app.wasm"), []byte{0x00, 0x61, 0x73, 0x6d}, 0644); err != nil {
		t.Fatal(err)
	}

	pub := filepath.Join(dir, "public")
	if err := os.MkdirAll(pub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pub, "site.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func TestServerRoutes(t *testing.T) {
	s := NewServer(previewConfig(t))
	handler := s.routes()

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("index with injected reload script", func(t *testing.T) {
		rec := get("/")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `<div id="app">`) {
			t.Errorf("body missing mount point: %s", body)
		}
		if !strings.Contains(body, ReloadPath) {
			t.Error("reload script not injected")
		}
		if !strings.Contains(body[:strings.LastIndex(body, "</body>")], ReloadPath) {
			t.Error("reload script injected after </body>")
		}
	})

	t.Run("wasm binary served raw", func(t *testing.T) {
		rec := get("/app.wasm")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "<script>") {
			t.Error("non-HTML file was modified")
		}
	})

	t.Run("static dir", func(t *testing.T) {
		rec := get("/static/site.css")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if rec.Body.String() != "body{}" {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("healthz", func(t *testing.T) {
		if rec := get("/healthz"); rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		if rec := get("/metrics"); rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		if rec := get("/nope.html"); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestServerNoInjectionWithoutHotReload(t *testing.T) {
	cfg := previewConfig(t)
	cfg.Preview.HotReload = false

	s := NewServer(cfg)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Contains(rec.Body.String(), ReloadPath) {
		t.Error("reload script injected with hot reload disabled")
	}
}
