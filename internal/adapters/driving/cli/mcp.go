package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
the site, read the programme and look up speakers and sponsors.

By default the server speaks JSON-RPC over stdio. Use --port to serve
over HTTP instead, for example to try it with the MCP Inspector.

Examples:
  # Stdio mode (default)
  agmsite mcp serve

  # HTTP mode
  agmsite mcp serve --port 8090

Assistant configuration:
  {
    "mcpServers": {
      "agmsite": {
        "command": "/path/to/agmsite",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// mcpPorts assembles the MCP server's services from the shared globals.
func mcpPorts() *mcp.Ports {
	return &mcp.Ports{
		Search:    searchService,
		Directory: directoryService,
		Programme: programmeService,
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(mcpPorts())
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
