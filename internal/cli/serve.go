package cli

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/pptx"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/wire"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local"
)

const (
	// watchInterval is how often the source file is polled for changes.
	watchInterval = 500 * time.Millisecond

	// shutdownTimeout bounds graceful shutdown after Ctrl+C.
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the serve command for the live preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [source.md|dir]",
		Short: "Serve a live preview of the deck over HTTP",
		Long: `Serve a live preview of the deck over HTTP.

The preview server parses and plans the deck, then serves an HTML index with
per-slide wireframes, the deck and plan JSON, and a PPTX download. The source
file is polled for changes and the deck rebuilt automatically, so edits show
up on reload.

Endpoints:
  /                    HTML index with wireframe previews
  /deck.json           parsed deck model
  /plan.json           layout plan document
  /slides/{number}.svg wireframe for one slide
  /deck.pptx           rendered PowerPoint download
  /healthz             liveness probe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return c.runServe(cmd.Context(), source, addr, noWatch)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable source file watching")

	return cmd
}

// runServe builds the deck, starts the watcher, and serves until cancelled.
func (c *CLI) runServe(ctx context.Context, source, addr string, noWatch bool) error {
	if err := errors.ValidateAddr(addr); err != nil {
		return err
	}

	path, err := local.Resolve(source)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	srv := newDeckServer(path, runner, c.Logger)
	if err := srv.rebuild(ctx); err != nil {
		return err
	}

	if !noWatch {
		go srv.watch(ctx, watchInterval)
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printInfo("Serving %s", StyleHighlight.Render(path))
	printKeyValue("URL", StyleLink.Render(displayURL(addr)))
	printInline("Press Ctrl+C to stop")
	printNewline()

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if addr != "" && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// =============================================================================
// DeckServer - Live Preview
// =============================================================================

// snapshot is one immutable build of the deck. Handlers grab the current
// snapshot once and work from it, so a concurrent rebuild never mixes deck
// and plans from different builds in one response.
type snapshot struct {
	deck  deck.Deck
	plans []plan.LayoutPlan
	mtime time.Time
}

// deckServer rebuilds the deck from its source file and serves previews.
type deckServer struct {
	path   string
	runner *pipeline.Runner
	logger *log.Logger

	mu   sync.RWMutex
	snap *snapshot
}

func newDeckServer(path string, runner *pipeline.Runner, logger *log.Logger) *deckServer {
	return &deckServer{path: path, runner: runner, logger: logger}
}

// rebuild parses and plans the source file and swaps in the new snapshot.
func (s *deckServer) rebuild(ctx context.Context) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat source %s: %w", s.path, err)
	}
	src, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read source %s: %w", s.path, err)
	}

	d, err := s.runner.Parse(ctx, src, pipeline.Options{Source: s.path, Logger: s.logger})
	if err != nil {
		return err
	}
	plans, err := s.runner.Plan(ctx, d, pipeline.Options{Logger: s.logger})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = &snapshot{deck: d, plans: plans, mtime: info.ModTime()}
	s.mu.Unlock()

	s.logger.Info("deck rebuilt", "source", s.path, "slides", len(d.Slides), "warnings", len(d.Warnings))
	return nil
}

// current returns the latest snapshot.
func (s *deckServer) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// watch polls the source file and rebuilds when its mtime advances.
// Rebuild failures are logged and the previous snapshot stays live.
func (s *deckServer) watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(s.path)
			if err != nil {
				s.logger.Warn("watch stat failed", "source", s.path, "err", err)
				continue
			}
			if !info.ModTime().After(s.current().mtime) {
				continue
			}
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn("rebuild failed", "source", s.path, "err", err)
			}
		}
	}
}

// routes assembles the preview router.
func (s *deckServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/deck.json", s.handleDeckJSON)
	r.Get("/plan.json", s.handlePlanJSON)
	r.Get("/slides/{number}.svg", s.handleSlideSVG)
	r.Get("/deck.pptx", s.handleDeckPPTX)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// requestLogger attaches the server logger to the request context and logs
// one line per request at debug level.
func (s *deckServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), s.logger)))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// =============================================================================
// Handlers
// =============================================================================

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} · slidesmith</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 72rem; color: #1a1a2e; }
  header { display: flex; justify-content: space-between; align-items: baseline; }
  nav a { margin-left: 1rem; }
  .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(20rem, 1fr)); gap: 1.5rem; }
  figure { margin: 0; }
  figure img { width: 100%; border: 1px solid #ddd; border-radius: 4px; }
  figcaption { font-size: 0.85rem; color: #555; padding-top: 0.25rem; }
  .badge { font-size: 0.75rem; padding: 0 0.4rem; border-radius: 3px; color: #fff; background: #555; }
  .badge.diagram { background: #0f7b8a; }
  .badge.split-screenshot { background: #4a6fa5; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <nav>
    <a href="/deck.json">deck.json</a>
    <a href="/plan.json">plan.json</a>
    <a href="/deck.pptx">deck.pptx</a>
  </nav>
</header>
{{if .Author}}<p>{{.Author}}</p>{{end}}
<div class="grid">
{{range .Slides}}
  <figure>
    <a href="/slides/{{.Number}}.svg"><img src="/slides/{{.Number}}.svg" loading="lazy" alt="Slide {{.Number}}"></a>
    <figcaption>{{.Number}}. {{.Title}} <span class="badge {{.Template}}">{{.Template}}</span></figcaption>
  </figure>
{{end}}
</div>
</body>
</html>
`))

// indexData feeds the HTML index template.
type indexData struct {
	Title  string
	Author string
	Slides []indexSlide
}

type indexSlide struct {
	Number   int
	Title    string
	Template plan.Template
}

func (s *deckServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.current()

	data := indexData{
		Title:  snap.deck.DisplayTitle(),
		Author: snap.deck.Meta.Author,
	}
	for _, p := range snap.plans {
		data.Slides = append(data.Slides, indexSlide{
			Number:   p.Slide.Number,
			Title:    deck.PlainText(p.Slide.Title),
			Template: p.Template,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		loggerFromContext(r.Context()).Warn("index render failed", "err", err)
	}
}

func (s *deckServer) handleDeckJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.current()
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteDeck(snap.deck, w); err != nil {
		loggerFromContext(r.Context()).Warn("deck encode failed", "err", err)
	}
}

func (s *deckServer) handlePlanJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.current()
	doc := pkgio.PlanDocument{Meta: snap.deck.Meta, Plans: snap.plans}
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WritePlans(doc, w); err != nil {
		loggerFromContext(r.Context()).Warn("plan encode failed", "err", err)
	}
}

func (s *deckServer) handleSlideSVG(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "invalid slide number", http.StatusBadRequest)
		return
	}

	snap := s.current()
	for _, p := range snap.plans {
		if p.Slide.Number == number {
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write(wire.RenderSVG(p))
			return
		}
	}
	http.NotFound(w, r)
}

func (s *deckServer) handleDeckPPTX(w http.ResponseWriter, r *http.Request) {
	snap := s.current()
	data, err := pptx.Render(snap.deck, snap.plans)
	if err != nil {
		loggerFromContext(r.Context()).Error("pptx render failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	filename := filepath.Base(derivedOutput(s.path, ".pptx"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func (s *deckServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
