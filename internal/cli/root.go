// Package cli wires configuration, the dataset service and the HTTP server
// behind the resourcehub command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/resourcehub/internal/config"
	"github.com/JonMunkholm/resourcehub/internal/core"
	"github.com/JonMunkholm/resourcehub/internal/csv"
	"github.com/JonMunkholm/resourcehub/internal/logging"
	"github.com/JonMunkholm/resourcehub/internal/metrics"
	"github.com/JonMunkholm/resourcehub/internal/source"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

var (
	envFile   string
	sourceURL string
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg *config.Config

// NewRootCommand builds the command tree. Running it without a subcommand
// serves the directory.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "resourcehub",
		Short: "Searchable directory over a published resource spreadsheet",
		Long: `resourcehub fetches a published spreadsheet as CSV, derives filter
facets from its tag columns and serves an embeddable, searchable directory.

Configuration comes from the environment (optionally a .env file).`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runServe,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringVar(&sourceURL, "url", "", "published sheet CSV URL (overrides SOURCE_URL)")

	root.AddCommand(newServeCommand(), newSearchCommand(), newFacetsCommand(), newVersionCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// Overload overwrites existing env vars
	if err := godotenv.Overload(envFile); err != nil {
		slog.Debug("no .env file loaded, using environment variables", "file", envFile)
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)", "file", envFile)
	}

	c, err := config.Load()
	if err != nil {
		return err
	}
	if sourceURL != "" {
		c.Source.URL = sourceURL
		if err := c.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
	}

	// Commands that print results keep stdout clean.
	var out io.Writer = os.Stdout
	if cmd.Name() != "serve" && cmd.Name() != "resourcehub" {
		out = os.Stderr
	}
	logging.SetupWriter(out, c.Logging.Level, c.Logging.Format)

	cfg = c
	return nil
}

// newService builds the fetcher and dataset service from cfg.
func newService(c *config.Config, observe bool) *core.Service {
	fetcher := source.NewFetcher(source.Config{
		URL:       c.Source.URL,
		Timeout:   c.Source.Timeout,
		MaxBytes:  c.Source.MaxBytes,
		UserAgent: c.Source.UserAgent,
		CacheTTL:  c.Source.CacheTTL,
	}, nil)

	opts := core.Options{
		Decode:      csv.DecodeOptions{ShortRows: c.ShortRowPolicy()},
		LoadTimeout: c.Source.Timeout + core.DefaultLoadTimeout,
	}
	if observe {
		opts.Observer = metrics.LoadObserver{}
	}
	return core.NewService(fetcher, opts)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "resourcehub %s\n", Version)
			return err
		},
	}
}
