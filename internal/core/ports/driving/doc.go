// Package driving defines what the CLI, the picker and the MCP server call
// into: matching, interactive sessions and settings.
//
// Implementations live in internal/core/services.
package driving
