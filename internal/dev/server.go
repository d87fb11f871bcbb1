// Package dev implements the preview server: it serves the built output
// directory, watches the project for changes, rebuilds, and pushes reload
// messages to connected browsers over WebSocket.
package dev

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/verdin-dev/verdin/internal/build"
	"github.com/verdin-dev/verdin/internal/config"
	"github.com/verdin-dev/verdin/pkg/middleware"
)

// ReloadPath is the WebSocket endpoint the injected client script
// connects to.
const ReloadPath = "/_verdin/reload"

// rebuildDebounce coalesces bursts of file changes into one rebuild.
const rebuildDebounce = 150 * time.Millisecond

// Server is the development preview server.
type Server struct {
	config  *config.Config
	builder *build.Builder
	watcher *Watcher
	reload  *ReloadServer

	httpServer *http.Server

	mu           sync.Mutex
	rebuildTimer *time.Timer
}

// NewServer creates a preview server for the given project configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		config:  cfg,
		builder: build.NewBuilder(cfg),
		reload:  NewReloadServer(),
	}

	s.watcher = NewWatcher(WatcherConfig{
		Paths:  cfg.WatchPaths(),
		Ignore: append(append([]string{}, DefaultIgnore...), cfg.Preview.Ignore...),
	})
	s.watcher.OnChange(s.handleChange)

	return s
}

// Start builds the project, then serves it until the context is
// cancelled. It blocks.
func (s *Server) Start(ctx context.Context) error {
	if result := s.builder.Build(ctx); !result.Success {
		if result.Error != nil {
			return result.Error
		}
		return fmt.Errorf("dev: initial build failed:\n%s", result.Output)
	}

	s.httpServer = &http.Server{
		Addr:    s.config.PreviewAddress(),
		Handler: s.routes(),
	}

	if s.config.Preview.HotReload {
		go func() {
			if err := s.watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("dev: watcher stopped: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.watcher.Stop()
	s.reload.Close()

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// routes builds the chi router for the preview server.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry())

	r.Get(ReloadPath, s.reload.HandleWebSocket)
	r.Handle("/metrics", middleware.MetricsHandler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if s.config.Static.Dir != "" {
		prefix := s.config.Static.Prefix
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(s.config.StaticPath())))
		r.Handle(prefix+"/*", fs)
	}

	r.Get("/*", s.serveOutput)

	return r
}

// serveOutput serves files from the build output directory. HTML pages
// get the reload client script injected before </body> so the browser
// reconnects to this server.
func (s *Server) serveOutput(w http.ResponseWriter, req *http.Request) {
	name := path.Clean(req.URL.Path)
	if name == "/" || name == "." {
		name = "/index.html"
	}

	file := filepath.Join(s.config.OutputPath(), filepath.FromSlash(strings.TrimPrefix(name, "/")))

	if strings.HasSuffix(file, ".html") {
		s.serveHTML(w, req, file)
		return
	}

	http.ServeFile(w, req, file)
}

// serveHTML serves an HTML file with the reload script injected.
func (s *Server) serveHTML(w http.ResponseWriter, req *http.Request, file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	page := string(data)
	if s.config.Preview.HotReload {
		if idx := strings.LastIndex(page, "</body>"); idx >= 0 {
			page = page[:idx] + ReloadClientScript + page[idx:]
		} else {
			page += ReloadClientScript
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// handleChange is the watcher callback. CSS changes hot-swap without a
// rebuild; source and static changes schedule a debounced rebuild.
func (s *Server) handleChange(change Change) {
	if change.Type == ChangeStyle {
		s.reload.NotifyCSS(filepath.Base(change.Path))
		middleware.RecordReload(s.reload.ClientCount())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rebuildTimer != nil {
		s.rebuildTimer.Stop()
	}
	s.rebuildTimer = time.AfterFunc(rebuildDebounce, s.rebuild)
}

// rebuild runs a build and notifies connected browsers of the result.
func (s *Server) rebuild() {
	log.Printf("dev: rebuilding...")

	result := s.builder.Build(context.Background())
	if !result.Success {
		middleware.RecordRebuild("error")
		msg := result.Output
		if msg == "" && result.Error != nil {
			msg = result.Error.Error()
		}
		log.Printf("dev: rebuild failed:\n%s", msg)
		s.reload.NotifyError(msg)
		return
	}

	middleware.RecordRebuild("success")
	log.Printf("dev: rebuilt in %s", result.Duration.Round(time.Millisecond))

	s.reload.ClearError()
	s.reload.NotifyReload()
	middleware.RecordReload(s.reload.ClientCount())
}
