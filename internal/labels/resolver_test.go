package labels

import (
	"errors"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewDefaultResolver()

	tests := []struct {
		name   string
		raw    *string
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"empty", Ptr(""), "", false},
		{"blank", Ptr("   "), "", false},
		{"padded alias", Ptr("  L "), "laptop", true},
		{"spaced alias", Ptr("mou se"), "mouse", true},
		{"mixed case alias", Ptr("NoteBooks"), "laptop", true},
		{"alias without catalog entry", Ptr("kb"), "keyboard", true},
		{"unknown label", Ptr("Widget"), "widget", true},
		{"canonical label", Ptr("laptop"), "laptop", true},
		{"inner spacing kept", Ptr("Mou  Se"), "mou  se", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeIsStable(t *testing.T) {
	n := NewDefaultResolver()

	for _, raw := range []string{" L", "Widget", "MICE", "kb", "laptop"} {
		once, ok := n.Normalize(Ptr(raw))
		if !ok {
			t.Fatalf("%q: expected a canonical label", raw)
		}
		twice, ok := n.Normalize(&once)
		if !ok || twice != once {
			t.Errorf("%q: expected %q after second pass, got %q", raw, once, twice)
		}
	}
}

func TestResolve(t *testing.T) {
	r := NewDefaultResolver()

	tests := []struct {
		name     string
		raw      *string
		fallback *string
		want     string
		wantOK   bool
	}{
		{"catalog hit", Ptr("laptop"), nil, "/product-images/laptop.jpg", true},
		{"catalog hit through alias", Ptr(" M "), nil, "/product-images/mouse.jpg", true},
		{"catalog beats fallback", Ptr("mouse"), Ptr("https://x/other.jpg"), "/product-images/mouse.jpg", true},
		{"fallback on unknown label", Ptr("unknown-thing"), Ptr("https://x/photo.jpg"), "https://x/photo.jpg", true},
		{"absent on unknown label", Ptr("unknown-thing"), nil, "", false},
		{"empty fallback is absent", Ptr("unknown-thing"), Ptr(""), "", false},
		{"nil label uses fallback", nil, Ptr("https://x/photo.jpg"), "https://x/photo.jpg", true},
		{"nil label without fallback", nil, nil, "", false},
		{"keyboard has no catalog image", Ptr("k"), Ptr("https://x/kb.jpg"), "https://x/kb.jpg", true},
		{"keyboard without fallback", Ptr("keyboard"), nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.raw, tt.fallback)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveNeverFabricates(t *testing.T) {
	r := NewDefaultResolver()
	fallback := "https://x/photo.jpg"

	allowed := map[string]bool{fallback: true}
	for _, label := range r.Catalog().Keys() {
		ref, _ := r.Catalog().Get(label)
		allowed[ref] = true
	}

	inputs := []string{"", " ", "l", "LAPTOP", "k", "mice", "zz", "lap top", "/product-images/laptop.jpg"}
	for _, in := range inputs {
		for _, fb := range []*string{nil, Ptr(""), &fallback} {
			got, ok := r.Resolve(Ptr(in), fb)
			if ok && !allowed[got] {
				t.Errorf("Resolve(%q) returned unexpected reference %q", in, got)
			}
		}
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := NewDefaultResolver()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got, _ := r.Resolve(Ptr("notebook"), nil); got != "/product-images/laptop.jpg" {
					t.Errorf("unexpected reference %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNilTables(t *testing.T) {
	r := NewResolver(nil, nil)

	if got, ok := r.Normalize(Ptr(" Mice ")); !ok || got != "mice" {
		t.Errorf("expected folded label without aliases, got %q (ok=%v)", got, ok)
	}
	if _, ok := r.Resolve(Ptr("laptop"), nil); ok {
		t.Error("expected absent without a catalog")
	}
}

func TestNewAliasTable(t *testing.T) {
	table, err := NewAliasTable(map[string]string{" LT ": " Laptop "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := table.Get("lt"); !ok || got != "laptop" {
		t.Errorf("expected folded entry, got %q (ok=%v)", got, ok)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestNewCatalogTableKeepsReferenceCase(t *testing.T) {
	table, err := NewCatalogTable(map[string]string{"Mouse": " /Images/Mouse.JPG "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := table.Get("mouse"); got != "/Images/Mouse.JPG" {
		t.Errorf("expected reference case preserved, got %q", got)
	}
}

func TestTableConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		wantErr error
	}{
		{"blank key", map[string]string{"  ": "laptop"}, ErrEmptyKey},
		{"duplicate after folding", map[string]string{"L": "laptop", " l": "laptop"}, ErrDuplicateKey},
		{"blank value", map[string]string{"l": " "}, ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAliasTable(tt.entries); !errors.Is(err, tt.wantErr) {
				t.Errorf("alias table: expected %v, got %v", tt.wantErr, err)
			}
			if _, err := NewCatalogTable(tt.entries); !errors.Is(err, tt.wantErr) {
				t.Errorf("catalog table: expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTablesAreCopied(t *testing.T) {
	src := map[string]string{"mouse": "/a.jpg"}
	table, err := NewCatalogTable(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src["mouse"] = "/b.jpg"

	if got, _ := table.Get("mouse"); got != "/a.jpg" {
		t.Errorf("table changed with its source map: %q", got)
	}
}

func TestKeysSorted(t *testing.T) {
	r := NewDefaultResolver()

	keys := r.Aliases().Keys()
	if len(keys) != 9 {
		t.Fatalf("expected 9 aliases, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
