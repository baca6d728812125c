package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ivergara/skym/internal/adapters/driven/storage/memory"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/core/services"
	"github.com/ivergara/skym/internal/logger"
)

// testDeps wires real services over an in-memory config store.
type testDeps struct {
	store        *memory.ConfigStore
	picker       driven.Picker
	settingsErr  error
	lastPath     string
	lastSettings domain.AppSettings
}

func newTestDeps() *testDeps {
	return &testDeps{store: memory.NewConfigStore()}
}

func (d *testDeps) Settings(path string) (driving.SettingsService, error) {
	d.lastPath = path
	if d.settingsErr != nil {
		return nil, d.settingsErr
	}
	return services.NewSettingsService(d.store), nil
}

func (d *testDeps) Matcher(settings domain.AppSettings) (driving.MatchService, error) {
	d.lastSettings = settings
	return services.NewMatchService(nil, d.picker, settings.Match.Workers), nil
}

// scriptedPicker drives the session with a fixed script.
type scriptedPicker struct {
	script func(session driven.PickerSession) []domain.Candidate
}

func (p *scriptedPicker) Pick(_ context.Context, session driven.PickerSession) ([]domain.Candidate, error) {
	return p.script(session), nil
}

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, d Dependencies, stdin string, args ...string) (string, error) {
	t.Helper()

	resetCommand(rootCmd)
	SetDependencies(d)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		SetDependencies(nil)
		logger.SetVerbose(false)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetCommand restores the flag defaults of cmd and its subcommands, since
// cobra keeps parsed values on the package-level commands between runs.
func resetCommand(cmd *cobra.Command) {
	resetFlags(cmd.Flags())
	resetFlags(cmd.PersistentFlags())
	for _, sub := range cmd.Commands() {
		resetCommand(sub)
	}
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
