package mcp

import (
	"context"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driving"
)

// mockMatchService is a mock implementation of driving.MatchService.
type mockMatchService struct {
	ranked    domain.RankedList
	result    domain.MatchResult
	err       error
	lastQuery string
}

func (m *mockMatchService) FuzzyMatch(_ context.Context, _ string, _ any, _ domain.MatchOptions) ([]string, error) {
	return m.ranked.Strings(), m.err
}

func (m *mockMatchService) Rank(_ context.Context, query string, _ []domain.Candidate) (domain.RankedList, error) {
	m.lastQuery = query
	return m.ranked, m.err
}

func (m *mockMatchService) Score(query, _ string) domain.MatchResult {
	m.lastQuery = query
	return m.result
}

func (m *mockMatchService) NewSession(_ string, _ []domain.Candidate) driving.Session {
	return nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }
func (m *mockSettingsService) SetEngine(_ domain.Engine) error  { return m.err }
func (m *mockSettingsService) SetLimit(_ int) error             { return m.err }
func (m *mockSettingsService) SetWorkers(_ int) error           { return m.err }
func (m *mockSettingsService) SetPrompt(_ string) error         { return m.err }
func (m *mockSettingsService) Validate() error                  { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
