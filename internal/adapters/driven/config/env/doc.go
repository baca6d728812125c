// Package env layers SKYM_* environment variables over another ConfigStore.
//
// Variables:
//   - SKYM_ENGINE: fuzzy engine (builtin, sahilm, fzf)
//   - SKYM_LIMIT: default result limit
//   - SKYM_WORKERS: ranking workers
//   - SKYM_PROMPT: picker prompt
//   - SKYM_ALT_SCREEN: run the picker in the alternate screen
//   - SKYM_VERBOSE: enable verbose logging
//   - SKYM_CONFIG: explicit config file path
package env
