// Package mcp provides an MCP (Model Context Protocol) server adapter for skym.
// It lets AI assistants rank strings with the same matcher the CLI uses.
package mcp

import "errors"

// ErrMissingMatchService is returned when the match service is not provided.
var ErrMissingMatchService = errors.New("mcp: match service is required")
