package labels

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyKey is returned when a table key is blank after trimming
	ErrEmptyKey = errors.New("empty table key")

	// ErrDuplicateKey is returned when two keys fold to the same entry
	ErrDuplicateKey = errors.New("duplicate table key")

	// ErrEmptyValue is returned when a table entry has no value
	ErrEmptyValue = errors.New("empty table value")
)

// AliasTable maps noisy or alternate tokens to canonical labels.
// It is immutable once built.
type AliasTable struct {
	entries map[string]string
}

// CatalogTable maps canonical labels to curated image references.
// It is immutable once built.
type CatalogTable struct {
	entries map[string]string
}

// NewAliasTable builds an alias table. Tokens and canonical targets are
// trimmed and lowercased.
func NewAliasTable(aliases map[string]string) (*AliasTable, error) {
	entries, err := buildEntries(aliases, true)
	if err != nil {
		return nil, fmt.Errorf("alias table: %w", err)
	}
	return &AliasTable{entries: entries}, nil
}

// NewCatalogTable builds a catalog table. Labels are trimmed and
// lowercased; image references are kept verbatim apart from trimming.
func NewCatalogTable(images map[string]string) (*CatalogTable, error) {
	entries, err := buildEntries(images, false)
	if err != nil {
		return nil, fmt.Errorf("catalog table: %w", err)
	}
	return &CatalogTable{entries: entries}, nil
}

// Get returns the canonical label for a token
func (t *AliasTable) Get(token string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[token]
	return v, ok
}

// Len returns the number of aliases
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns the alias tokens in sorted order
func (t *AliasTable) Keys() []string {
	if t == nil {
		return nil
	}
	return sortedKeys(t.entries)
}

// Get returns the image reference for a canonical label
func (t *CatalogTable) Get(label string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[label]
	return v, ok
}

// Len returns the number of catalog entries
func (t *CatalogTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns the catalog labels in sorted order
func (t *CatalogTable) Keys() []string {
	if t == nil {
		return nil
	}
	return sortedKeys(t.entries)
}

func buildEntries(in map[string]string, foldValues bool) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for rawKey, rawValue := range in {
		key := fold(rawKey)
		if key == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyKey, rawKey)
		}
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}

		value := strings.TrimSpace(rawValue)
		if foldValues {
			value = strings.ToLower(value)
		}
		if value == "" {
			return nil, fmt.Errorf("%w for key %q", ErrEmptyValue, key)
		}
		out[key] = value
	}
	return out, nil
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
