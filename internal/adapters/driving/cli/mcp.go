package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivergara/skym/internal/adapters/driving/mcp"
	"github.com/ivergara/skym/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can rank
strings with skym's matcher through the fuzzy_match and score tools.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead, or --http to serve on the
first free port between 8090 and 8099.

Examples:
  # Stdio mode (default)
  skym mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  skym mcp serve --port 8080
  skym mcp serve --http

Client configuration:
  {
    "mcpServers": {
      "skym": {
        "command": "/path/to/skym",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on a free port when --port is not set")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond, "HTTP requests per second (0 = unlimited)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	httpMode, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	if port < 0 {
		return fmt.Errorf("%w: port must not be negative", domain.ErrInvalidInput)
	}

	settingsService, err := openSettings()
	if err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	watchConfig(cmd.Context())

	matcher, err := deps.Matcher(*settings)
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Match:    matcher,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}
	server.SetRateLimit(mcp.RateLimitConfig{
		RequestsPerSecond: rps,
		BurstSize:         int(2 * rps),
	})

	if port == 0 && httpMode {
		port, err = mcp.FindAvailablePort(mcp.DefaultPortMin, mcp.DefaultPortMax)
		if err != nil {
			return err
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
