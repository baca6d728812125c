package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivergara/skym/internal/adapters/driven/storage/memory"
	"github.com/ivergara/skym/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{
		"match.engine":  "fzf",
		"match.limit":   25,
		"match.workers": 4,
		"ui.prompt":     "skym> ",
		"ui.alt_screen": true,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.EngineFzf, settings.Match.Engine)
	assert.Equal(t, 25, settings.Match.Limit)
	assert.Equal(t, 4, settings.Match.Workers)
	assert.Equal(t, "skym> ", settings.UI.Prompt)
	assert.True(t, settings.UI.AltScreen)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{
		"match.engine":  "levenshtein",
		"match.limit":   -3,
		"match.workers": 0,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Match, settings.Match)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	want := &domain.AppSettings{
		Match: domain.MatchSettings{Engine: domain.EngineSahilm, Limit: 10, Workers: 8},
		UI:    domain.UISettings{Prompt: "? ", AltScreen: true},
	}
	require.NoError(t, service.Save(want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "sahilm", store.GetString("match.engine"))
}

func TestSettingsService_SetEngine(t *testing.T) {
	for _, engine := range domain.AllEngines() {
		t.Run(engine.String(), func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.SetEngine(engine))

			settings, _ := service.Get()
			assert.Equal(t, engine, settings.Match.Engine)
		})
	}
}

func TestSettingsService_SetEngine_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetEngine(domain.Engine("levenshtein"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedEngine)
}

func TestSettingsService_SetLimit(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetLimit(15))
	settings, _ := service.Get()
	assert.Equal(t, 15, settings.Match.Limit)

	assert.ErrorIs(t, service.SetLimit(-1), domain.ErrInvalidInput)
}

func TestSettingsService_SetWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{"one", 1, false},
		{"many", 16, false},
		{"zero", 0, true},
		{"too many", maxWorkers + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.SetWorkers(tt.workers)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			settings, _ := service.Get()
			assert.Equal(t, tt.workers, settings.Match.Workers)
		})
	}
}

func TestSettingsService_SetPrompt(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetPrompt("find: "))
	settings, _ := service.Get()
	assert.Equal(t, "find: ", settings.UI.Prompt)

	assert.ErrorIs(t, service.SetPrompt(""), domain.ErrInvalidInput)
}

func TestSettingsService_SetterKeepsOtherValues(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{"ui.prompt": "$ ", "match.limit": 3})
	service := NewSettingsService(store)

	require.NoError(t, service.SetEngine(domain.EngineFzf))

	settings, _ := service.Get()
	assert.Equal(t, "$ ", settings.UI.Prompt)
	assert.Equal(t, 3, settings.Match.Limit)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		target error
	}{
		{"empty", nil, nil},
		{"valid", map[string]any{"match.engine": "fzf", "match.workers": 2}, nil},
		{"bad engine", map[string]any{"match.engine": "nope"}, domain.ErrUnsupportedEngine},
		{"negative limit", map[string]any{"match.limit": -1}, domain.ErrInvalidInput},
		{"zero workers", map[string]any{"match.workers": 0}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStoreFrom(tt.values))

			err := service.Validate()

			if tt.target == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
