package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivergara/skym/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure matching and picker settings.

Settings are stored in ~/.skym/config.toml. SKYM_* environment variables
and command line flags take precedence over stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsEngineCmd = &cobra.Command{
	Use:   "engine [name]",
	Short: "Set the fuzzy engine",
	Long: `Set the engine that aligns fuzzy (non-substring) matches.

Available engines:
  builtin - Shortest-span subsequence alignment (default)
  sahilm  - sahilm/fuzzy, Sublime Text style
  fzf     - fzf's FuzzyMatchV2 optimal alignment

The engine only changes which characters are highlighted and how fuzzy
matches are ordered among themselves; it never changes which lines match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsEngine,
}

var settingsLimitCmd = &cobra.Command{
	Use:   "limit <n>",
	Short: "Set the default result limit (0 = no limit)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLimit,
}

var settingsWorkersCmd = &cobra.Command{
	Use:   "workers <n>",
	Short: "Set the number of ranking goroutines",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWorkers,
}

var settingsPromptCmd = &cobra.Command{
	Use:   "prompt <text>",
	Short: "Set the interactive picker prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPrompt,
}

var settingsAltScreenCmd = &cobra.Command{
	Use:   "altscreen <on|off>",
	Short: "Run the interactive picker in the alternate screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAltScreen,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsEngineCmd)
	settingsCmd.AddCommand(settingsLimitCmd)
	settingsCmd.AddCommand(settingsWorkersCmd)
	settingsCmd.AddCommand(settingsPromptCmd)
	settingsCmd.AddCommand(settingsAltScreenCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := openSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	limit := "none"
	if settings.Match.Limit > 0 {
		limit = strconv.Itoa(settings.Match.Limit)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Match]")
	cmd.Printf("  Engine: %s\n", settings.Match.Engine.Description())
	cmd.Printf("  Limit: %s\n", limit)
	cmd.Printf("  Workers: %d\n", settings.Match.Workers)
	cmd.Println()

	cmd.Println("[Picker]")
	cmd.Printf("  Prompt: %q\n", settings.UI.Prompt)
	cmd.Printf("  Alternate screen: %s\n", onOff(settings.UI.AltScreen))

	if err := svc.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsEngine(cmd *cobra.Command, args []string) error {
	svc, err := openSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		current, err := svc.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Println("Available engines:")
		for _, e := range domain.AllEngines() {
			marker := " "
			if e == current.Match.Engine {
				marker = "*"
			}
			cmd.Printf("  %s %-8s %s\n", marker, e, e.Description())
		}
		return nil
	}

	engine := domain.Engine(strings.ToLower(strings.TrimSpace(args[0])))
	if err := svc.SetEngine(engine); err != nil {
		return fmt.Errorf("failed to set engine: %w", err)
	}
	cmd.Printf("Engine set to: %s\n", engine.Description())
	return nil
}

func runSettingsLimit(cmd *cobra.Command, args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}
	svc, err := openSettings()
	if err != nil {
		return err
	}
	if err := svc.SetLimit(n); err != nil {
		return fmt.Errorf("failed to set limit: %w", err)
	}
	cmd.Printf("Limit set to: %d\n", n)
	return nil
}

func runSettingsWorkers(cmd *cobra.Command, args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}
	svc, err := openSettings()
	if err != nil {
		return err
	}
	if err := svc.SetWorkers(n); err != nil {
		return fmt.Errorf("failed to set workers: %w", err)
	}
	cmd.Printf("Workers set to: %d\n", n)
	return nil
}

func runSettingsPrompt(cmd *cobra.Command, args []string) error {
	svc, err := openSettings()
	if err != nil {
		return err
	}
	if err := svc.SetPrompt(args[0]); err != nil {
		return fmt.Errorf("failed to set prompt: %w", err)
	}
	cmd.Printf("Prompt set to: %q\n", args[0])
	return nil
}

func runSettingsAltScreen(cmd *cobra.Command, args []string) error {
	on, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	svc, err := openSettings()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.UI.AltScreen = on
	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Alternate screen: %s\n", onOff(on))
	return nil
}

// parseCount parses a non-negative decimal count.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", domain.ErrInvalidInput, s)
	}
	return n, nil
}

// parseSwitch accepts on/off style booleans.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "true", "1":
		return true, nil
	case "off", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not on or off", domain.ErrInvalidInput, s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
