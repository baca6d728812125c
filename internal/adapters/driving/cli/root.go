// Package cli provides the skym command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/logger"
)

// version is set via ldflags during build.
var version = "dev"

// Dependencies builds the services commands need once flags are parsed.
type Dependencies interface {
	// Settings opens the settings service backed by the config file at path,
	// or the default location when path is empty.
	Settings(path string) (driving.SettingsService, error)

	// Matcher builds a match service for the given effective settings.
	Matcher(settings domain.AppSettings) (driving.MatchService, error)
}

// ConfigWatcher is implemented by dependencies that can reload the config
// file opened by Settings while a long-running command serves.
type ConfigWatcher interface {
	// WatchConfig signals after each reload until ctx is done.
	WatchConfig(ctx context.Context) (<-chan struct{}, error)
}

// deps is the current dependency provider.
var deps Dependencies

// SetDependencies sets the dependency provider used by all commands.
func SetDependencies(d Dependencies) {
	deps = d
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "skym [query]",
	Short: "Fuzzy-match lines of input against a query",
	Long: `skym ranks candidate strings against a query.

Candidates are read one per line from stdin or --file. Exact matches
(ignoring case) rank first, then contiguous substrings, then fuzzy
subsequence matches. Lines that do not contain the query are dropped.
An empty query prints every line in input order.

Examples:
  ls | skym rdm
  skym --file words.txt --limit 5 apple
  git branch | skym -i feat`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log timings and decisions to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.skym/config.toml)")
}

// Execute runs the root command. Command output goes to stdout so results
// can be piped. The picker draws on stderr and the caller reports errors.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if deps == nil {
		return errors.New("dependencies not configured")
	}
	return nil
}

// openSettings returns the settings service for the selected config file.
func openSettings() (driving.SettingsService, error) {
	svc, err := deps.Settings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return svc, nil
}

// watchConfig reloads settings in the background when deps supports it.
func watchConfig(ctx context.Context) bool {
	w, ok := deps.(ConfigWatcher)
	if !ok {
		return false
	}
	reloaded, err := w.WatchConfig(ctx)
	if err != nil {
		logger.Warn("config changes will not be picked up: %v", err)
		return false
	}
	go func() {
		for range reloaded {
			logger.Info("settings reloaded")
		}
	}()
	return true
}
