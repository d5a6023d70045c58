package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dgallion1/planview/internal/artifact"
	"github.com/dgallion1/planview/internal/config"
	"github.com/dgallion1/planview/internal/readmodel"
)

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	idx := artifact.NewIndex(map[string][]byte{
		"product/product-roadmap.md":            []byte("### 1. Invoices\nBills.\n"),
		"product/sections/invoices/spec.md":     []byte("# Invoices\n\n## Overview\nTrack bills.\n"),
		"product/sections/invoices/data.json":   []byte(`{"invoices": [{"id": 1}]}`),
		"product/sections/invoices/list.png":    []byte("\x89PNG\r\n\x1a\n"),
		"src/sections/invoices/InvoiceList.tsx": []byte("export default"),
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default()
	cfg.APIKey = apiKey
	return NewServer(readmodel.New(idx, cfg.AssetPrefix, log), log, cfg)
}

func get(t *testing.T, srv http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body=%s)", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestListSections(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/api/sections", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	sections, ok := decode(t, rec)["sections"].([]any)
	if !ok || len(sections) != 1 {
		t.Fatalf("expected 1 section, got %v", rec.Body.String())
	}
	first := sections[0].(map[string]any)
	if first["sectionId"] != "invoices" || first["complete"] != true || first["inRoadmap"] != true {
		t.Errorf("unexpected section summary %v", first)
	}
}

func TestSection(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/api/sections/invoices", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	section := body["section"].(map[string]any)
	parsed := section["specParsed"].(map[string]any)
	if parsed["overview"] != "Track bills." {
		t.Errorf("unexpected parsed spec %v", parsed)
	}
	if body["useShell"] != true {
		t.Errorf("expected useShell=true, got %v", body["useShell"])
	}

	rec = get(t, srv, "/api/sections/unknown", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown section, got %d", rec.Code)
	}
	if decode(t, rec)["section"].(map[string]any)["spec"] != nil {
		t.Errorf("expected no spec for unknown section")
	}

	rec = get(t, srv, "/api/sections/..%2Fetc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for escaped traversal, got %d", rec.Code)
	}
}

func TestScreenDesign(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/api/sections/invoices/screen-designs/InvoiceList", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decode(t, rec)["useShell"] != false {
		t.Errorf("expected useShell=false without shell components")
	}

	rec = get(t, srv, "/api/sections/invoices/screen-designs/Missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAssets(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/assets/product/sections/invoices/list.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}

	rec = get(t, srv, "/assets/product/missing.png", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAssets_ReservedCharacterNames(t *testing.T) {
	names := []string{"a?b.png", "100%.png", "list view.png", "a,b#c.png"}
	files := make(map[string][]byte, len(names))
	for _, name := range names {
		files["product/sections/inv/"+name] = []byte(name)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default()
	model := readmodel.New(artifact.NewIndex(files), cfg.AssetPrefix, log)
	srv := NewServer(model, log, cfg)

	shots := model.Screenshots("inv")
	if len(shots) != len(names) {
		t.Fatalf("expected %d screenshots, got %d", len(names), len(shots))
	}
	for _, shot := range shots {
		rec := get(t, srv, shot.URL, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("url=%q: expected 200, got %d", shot.URL, rec.Code)
			continue
		}
		if got := rec.Body.String(); got != shot.Name+".png" {
			t.Errorf("url=%q: expected body %q, got %q", shot.URL, shot.Name+".png", got)
		}
	}
}

func TestAssets_ExportArchiveStreamedFromTree(t *testing.T) {
	fsys := fstest.MapFS{
		"product-plan.zip": {Data: []byte("PK\x03\x04archive")},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	idx, err := artifact.Load(fsys, artifact.Patterns, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := config.Default()
	model := readmodel.New(idx, cfg.AssetPrefix, log)
	srv := NewServer(model, log, cfg)

	rec := get(t, srv, model.ExportArchiveURL(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "PK\x03\x04archive" {
		t.Errorf("unexpected archive body %q", rec.Body.String())
	}
	if cl := rec.Header().Get("Content-Length"); cl != "11" {
		t.Errorf("expected Content-Length 11, got %q", cl)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := config.Default()
	idx := artifact.NewIndex(map[string][]byte{"product/sections/inv/x.png": []byte("abc")})
	srv := NewServer(readmodel.New(idx, cfg.AssetPrefix, log), log, cfg)

	get(t, srv, "/assets/product/sections/inv/x.png", nil)
	get(t, srv, "/api/sections/..", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if first["status"] != float64(200) || first["bytes"] != float64(3) {
		t.Errorf("unexpected asset log entry %v", first)
	}
	if first["request_id"] == "" || first["request_id"] == nil {
		t.Errorf("expected request_id in log entry %v", first)
	}
	if second["status"] != float64(http.StatusBadRequest) {
		t.Errorf("expected 400 to be logged, got %v", second["status"])
	}
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t, "secret")

	if rec := get(t, srv, "/api/product", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
	if rec := get(t, srv, "/api/product", map[string]string{"Authorization": "Bearer wrong"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", rec.Code)
	}

	rec := get(t, srv, "/api/product", map[string]string{"Authorization": "Bearer secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
	product := decode(t, rec)["product"].(map[string]any)
	if product["roadmap"] == nil || product["overview"] != nil {
		t.Errorf("unexpected product %v", product)
	}

	if rec := get(t, srv, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("expected health to stay public, got %d", rec.Code)
	}
}
