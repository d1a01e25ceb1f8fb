package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// newTestServer builds a preview server over the shared fixture. The deck
// server can be driven directly; the httptest server exposes its routes.
func newTestServer(t *testing.T) (*deckServer, *httptest.Server) {
	t.Helper()

	src := writeTestDeck(t, t.TempDir(), "talk.md")
	c := testCLI()
	runner, err := c.newRunner(true)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	srv := newDeckServer(src, runner, c.Logger)
	if err := srv.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return srv, ts
}

// get fetches path from ts and returns the response with its body drained.
func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body of %s: %v", path, err)
	}
	return resp, body
}

func TestServeHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}
}

func TestServeIndex(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}

	page := string(body)
	for _, want := range []string{
		"CLI Test Deck",
		"Test Author",
		"Architecture Overview",
		"/slides/2.svg",
		"deck.json",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index page missing %q", want)
		}
	}
}

func TestServeDeckJSON(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts, "/deck.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	d, err := pkgio.ReadDeck(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode deck: %v", err)
	}
	if got, want := len(d.Slides), 2; got != want {
		t.Errorf("slides = %d, want %d", got, want)
	}
	if d.Meta.Title != "CLI Test Deck" {
		t.Errorf("meta title = %q, want %q", d.Meta.Title, "CLI Test Deck")
	}
}

func TestServePlanJSON(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts, "/plan.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	doc, err := pkgio.ReadPlans(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode plans: %v", err)
	}
	if got, want := len(doc.Plans), 2; got != want {
		t.Fatalf("plans = %d, want %d", got, want)
	}
	// Slide 2 is a stock diagram slide.
	if doc.Plans[0].Template != plan.TemplateDiagram {
		t.Errorf("slide 2 template = %q, want %q", doc.Plans[0].Template, plan.TemplateDiagram)
	}
}

func TestServeSlideSVG(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/slides/2.svg", http.StatusOK},
		{"/slides/99.svg", http.StatusNotFound},
		{"/slides/abc.svg", http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, body := get(t, ts, tt.path)
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.status)
			continue
		}
		if tt.status == http.StatusOK && !bytes.HasPrefix(body, []byte("<svg")) {
			t.Errorf("GET %s should return an svg document", tt.path)
		}
	}
}

func TestServeDeckPPTX(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts, "/deck.pptx")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !bytes.HasPrefix(body, []byte("PK")) {
		t.Error("pptx download should start with zip magic")
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, `"talk.pptx"`) {
		t.Errorf("content disposition = %q, want filename talk.pptx", cd)
	}
}

func TestServeRebuild(t *testing.T) {
	srv, _ := newTestServer(t)

	if got, want := len(srv.current().deck.Slides), 2; got != want {
		t.Fatalf("initial slides = %d, want %d", got, want)
	}

	updated := testDeckSource + "\n---\n\n## Slide 4: Appendix\n\nExtra material.\n"
	if err := os.WriteFile(srv.path, []byte(updated), 0o644); err != nil {
		t.Fatalf("update source: %v", err)
	}
	if err := srv.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	snap := srv.current()
	if got, want := len(snap.deck.Slides), 3; got != want {
		t.Errorf("rebuilt slides = %d, want %d", got, want)
	}
	if got, want := len(snap.plans), 3; got != want {
		t.Errorf("rebuilt plans = %d, want %d", got, want)
	}
}

func TestServeRebuildFailureKeepsSnapshot(t *testing.T) {
	srv, _ := newTestServer(t)
	before := srv.current()

	if err := os.Remove(srv.path); err != nil {
		t.Fatalf("remove source: %v", err)
	}
	if err := srv.rebuild(context.Background()); err == nil {
		t.Fatal("expected error for missing source")
	}
	if srv.current() != before {
		t.Error("failed rebuild should keep the previous snapshot")
	}
}

func TestDisplayURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "http://localhost:8080"},
		{"localhost:3000", "http://localhost:3000"},
		{"0.0.0.0:80", "http://0.0.0.0:80"},
	}
	for _, tt := range tests {
		if got := displayURL(tt.addr); got != tt.want {
			t.Errorf("displayURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestRunServeInvalidAddr(t *testing.T) {
	c := testCLI()
	err := c.runServe(context.Background(), "", "no-port", true)
	if err == nil {
		t.Fatal("expected error for invalid address")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAddr) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAddr)
	}
}
