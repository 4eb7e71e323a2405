package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"robowarehouse/internal/config"
	"robowarehouse/internal/labels"
)

// Document is the on-disk form of the label tables
type Document struct {
	Aliases map[string]string `json:"aliases"`
	Images  map[string]string `json:"images"`
}

// TableSource provides label tables from storage
type TableSource interface {
	ListAliases(ctx context.Context) (map[string]string, error)
	ListCatalogImages(ctx context.Context) (map[string]string, error)
}

// Loader builds the label resolver once at startup
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new catalog loader
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load builds a resolver from the source named in cfg. The table source
// is only consulted for the postgres source and may be nil otherwise.
func (l *Loader) Load(ctx context.Context, cfg config.CatalogConfig, src TableSource) (*labels.Resolver, error) {
	switch cfg.Source {
	case config.CatalogSourceBuiltin, "":
		return l.Build(Document{
			Aliases: labels.DefaultAliases(),
			Images:  labels.DefaultCatalogImages(),
		}, config.CatalogSourceBuiltin)
	case config.CatalogSourceFile:
		return l.LoadFile(cfg.File)
	case config.CatalogSourcePostgres:
		if src == nil {
			return nil, fmt.Errorf("catalog source %q requires a table source", cfg.Source)
		}
		return l.LoadSource(ctx, src)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// LoadFile builds a resolver from a JSON document
func (l *Loader) LoadFile(filename string) (*labels.Resolver, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filename, err)
	}

	return l.Build(doc, filename)
}

// LoadSource builds a resolver from a table source
func (l *Loader) LoadSource(ctx context.Context, src TableSource) (*labels.Resolver, error) {
	aliases, err := src.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}

	images, err := src.ListCatalogImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog images: %w", err)
	}

	return l.Build(Document{Aliases: aliases, Images: images}, config.CatalogSourcePostgres)
}

// Build validates doc and constructs the resolver
func (l *Loader) Build(doc Document, source string) (*labels.Resolver, error) {
	aliases, err := labels.NewAliasTable(doc.Aliases)
	if err != nil {
		return nil, err
	}

	images, err := labels.NewCatalogTable(doc.Images)
	if err != nil {
		return nil, err
	}

	// Aliases pointing outside the catalog resolve to the fallback
	for _, token := range aliases.Keys() {
		canonical, _ := aliases.Get(token)
		if _, ok := images.Get(canonical); !ok {
			l.logger.Debug("alias target has no catalog image", "alias", token, "label", canonical)
		}
	}

	l.logger.Info("loaded label catalog",
		"source", source,
		"aliases", aliases.Len(),
		"images", images.Len(),
	)

	return labels.NewResolver(aliases, images), nil
}
