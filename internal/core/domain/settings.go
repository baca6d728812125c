package domain

const unknownDescription = "Unknown"

// MatchSettings configures non-interactive matching.
type MatchSettings struct {
	// Engine aligns fuzzy (non-substring) matches.
	Engine Engine

	// Limit caps the number of printed results. Zero means no limit.
	Limit int

	// Workers is the number of goroutines used to rank large inputs.
	// One disables parallel ranking.
	Workers int
}

// UISettings configures the interactive picker.
type UISettings struct {
	// Prompt is shown in front of the query input.
	Prompt string

	// AltScreen runs the picker in the terminal's alternate screen.
	AltScreen bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Match holds matching behaviour settings.
	Match MatchSettings

	// UI holds picker settings.
	UI UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Match: MatchSettings{
			Engine:  EngineBuiltin,
			Limit:   0,
			Workers: 1,
		},
		UI: UISettings{
			Prompt:    "> ",
			AltScreen: false,
		},
	}
}
