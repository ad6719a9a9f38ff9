package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

AI agents connected to the server can query the repository through the
context_get, status_get, log_recent, and diff_get tools; every response
is sanitized before it leaves the process.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	ops, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(ops, cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "Shutting down MCP server...\n")
		cancel()
	}()

	// All human-facing output goes to stderr; stdout carries the
	// MCP protocol.
	fmt.Fprintf(os.Stderr, "Starting MCP server with stdio transport\n")

	if err := server.Start(ctx); err != nil {
		if err == context.Canceled {
			fmt.Fprintf(os.Stderr, "MCP server stopped\n")
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
