package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"robowarehouse/internal/catalog"
	"robowarehouse/internal/client"
	"robowarehouse/internal/config"
	"robowarehouse/internal/database"
	"robowarehouse/internal/labels"
	"robowarehouse/internal/repository"
	"robowarehouse/internal/service"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type rootFlags struct {
	BackendURL    string
	CatalogSource string
	CatalogFile   string
	Output        string
	LogLevel      string
}

// app carries what a command needs to run
type app struct {
	flags  *rootFlags
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// Execute runs warehousectl with args
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.Load()
	flags := &rootFlags{
		BackendURL:    cfg.Backend.BaseURL,
		CatalogSource: cfg.Catalog.Source,
		CatalogFile:   cfg.Catalog.File,
		Output:        envOr("WAREHOUSECTL_OUTPUT", outputText),
		LogLevel:      "warn",
	}
	a := &app{flags: flags, cfg: cfg, out: stdout, errOut: stderr}

	root := &cobra.Command{
		Use:           "warehousectl",
		Short:         "Inspect scans, inventory and label images",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Example: strings.TrimSpace(`
  # Resolve an OCR label to its display image
  warehousectl resolve " L "
  warehousectl resolve widget --fallback https://cdn.example.com/photo.jpg

  # Review scans
  warehousectl scans list --status in_progress --q serial
  warehousectl scans approve 42
  warehousectl scans clear-completed

  # Inventory, as JSON
  warehousectl --output=json inventory --q laptop
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.Output != outputText && flags.Output != outputJSON {
				return fmt.Errorf("invalid --output %q (want text|json)", flags.Output)
			}
			cfg.Backend.BaseURL = flags.BackendURL
			cfg.Catalog.Source = flags.CatalogSource
			cfg.Catalog.File = flags.CatalogFile
			a.logger = newLogger(stderr, flags.LogLevel)
			return cfg.Validate()
		},
	}

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&flags.BackendURL, "backend-url", flags.BackendURL, "Backend base URL")
	root.PersistentFlags().StringVar(&flags.CatalogSource, "catalog-source", flags.CatalogSource, "Label catalog source: builtin|file|postgres")
	root.PersistentFlags().StringVar(&flags.CatalogFile, "catalog-file", flags.CatalogFile, "Label catalog JSON file")
	root.PersistentFlags().StringVar(&flags.Output, "output", flags.Output, "Output format: text|json")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug|info|warn|error")

	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newNormalizeCmd(a))
	root.AddCommand(newScansCmd(a))
	root.AddCommand(newInventoryCmd(a))
	root.AddCommand(newWatchCmd(a))

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
	}
	return err
}

// loadResolver builds the label resolver from the configured source
func (a *app) loadResolver(ctx context.Context) (*labels.Resolver, error) {
	var source catalog.TableSource
	if a.cfg.UsesDatabase() {
		db, err := database.Connect(ctx, a.cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		source = repository.NewLabelRepo(db)
	}
	return catalog.NewLoader(a.logger).Load(ctx, a.cfg.Catalog, source)
}

// newService wires the warehouse service. The returned func releases the
// backend client.
func (a *app) newService(ctx context.Context) (*service.WarehouseService, func(), error) {
	resolver, err := a.loadResolver(ctx)
	if err != nil {
		return nil, nil, err
	}

	backend := client.NewBackendClient(client.BackendConfig{
		BaseURL:           a.cfg.Backend.BaseURL,
		RequestsPerSecond: a.cfg.Backend.RequestsPerSecond,
		Timeout:           a.cfg.Backend.Timeout,
		Retry:             client.DefaultRetryConfig(),
	})

	return service.NewWarehouseService(backend, resolver, backend.BaseURL()), backend.Close, nil
}

func (a *app) json() bool {
	return a.flags.Output == outputJSON
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (a *app) tableWriter() (*tabwriter.Writer, func()) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	return tw, func() { _ = tw.Flush() }
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func orDashStr(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func percent(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v)
}
