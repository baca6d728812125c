// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - FuzzyEngine: Aligns a query with a candidate (builtin, sahilm, fzf)
//   - Picker: Interactive selection UI (bubbletea). Optional; without it
//     interactive matching fails with domain.ErrPickerUnavailable.
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
