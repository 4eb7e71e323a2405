package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"robowarehouse/internal/config"
	"robowarehouse/internal/labels"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSource struct {
	aliases map[string]string
	images  map[string]string
	err     error
}

func (f *fakeSource) ListAliases(ctx context.Context) (map[string]string, error) {
	return f.aliases, f.err
}

func (f *fakeSource) ListCatalogImages(ctx context.Context) (map[string]string, error) {
	return f.images, f.err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadBuiltin(t *testing.T) {
	l := NewLoader(testLogger())

	r, err := l.Load(context.Background(), config.CatalogConfig{Source: config.CatalogSourceBuiltin}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := r.Resolve(labels.Ptr("l"), nil); got != "/product-images/laptop.jpg" {
		t.Errorf("unexpected reference %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `{
		"aliases": {"Scr": "Screen"},
		"images": {"screen": "https://cdn.example.com/screen.png"}
	}`)
	l := NewLoader(testLogger())

	r, err := l.Load(context.Background(), config.CatalogConfig{Source: config.CatalogSourceFile, File: path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := r.Resolve(labels.Ptr(" SCR "), nil); !ok || got != "https://cdn.example.com/screen.png" {
		t.Errorf("unexpected reference %q (ok=%v)", got, ok)
	}
	if _, ok := r.Resolve(labels.Ptr("laptop"), nil); ok {
		t.Error("file catalog should not include bundled entries")
	}
}

func TestLoadFileErrors(t *testing.T) {
	l := NewLoader(testLogger())

	if _, err := l.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := l.LoadFile(writeFile(t, `{"aliases": [}`)); err == nil {
		t.Error("expected error for malformed JSON")
	}

	_, err := l.LoadFile(writeFile(t, `{"aliases": {"L": "laptop", "l": "laptop"}}`))
	if !errors.Is(err, labels.ErrDuplicateKey) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
}

func TestLoadSource(t *testing.T) {
	l := NewLoader(testLogger())
	src := &fakeSource{
		aliases: map[string]string{"m": "mouse"},
		images:  map[string]string{"mouse": "/product-images/mouse.jpg"},
	}

	r, err := l.Load(context.Background(), config.CatalogConfig{Source: config.CatalogSourcePostgres}, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := r.Resolve(labels.Ptr("M"), nil); got != "/product-images/mouse.jpg" {
		t.Errorf("unexpected reference %q", got)
	}
}

func TestLoadSourceErrors(t *testing.T) {
	l := NewLoader(testLogger())
	cfg := config.CatalogConfig{Source: config.CatalogSourcePostgres}

	if _, err := l.Load(context.Background(), cfg, nil); err == nil {
		t.Error("expected error without table source")
	}

	boom := errors.New("connection refused")
	if _, err := l.Load(context.Background(), cfg, &fakeSource{err: boom}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestLoadUnknownSource(t *testing.T) {
	l := NewLoader(testLogger())

	if _, err := l.Load(context.Background(), config.CatalogConfig{Source: "s3"}, nil); err == nil {
		t.Error("expected error for unknown source")
	}
}
