// Package mcp exposes sanitized repository context over the Model
// Context Protocol so AI agents can query a repository without running
// git themselves.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aki/gitctx/internal/core/config"
	"github.com/aki/gitctx/internal/core/git"
)

// Server implements the MCP server using mcp-go. Transport is stdio
// only; every tool and resource returns sanitized JSON.
type Server struct {
	mcpServer *server.MCPServer
	ops       *git.Operations
	cfg       *config.Config
}

// NewServer creates an MCP server bound to a single repository.
func NewServer(ops *git.Operations, cfg *config.Config) (*Server, error) {
	if !ops.IsGitRepository() {
		return nil, fmt.Errorf("not a git repository")
	}

	mcpServer := server.NewMCPServer(
		"gitctx",
		"1.0.0",
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		ops:       ops,
		cfg:       cfg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// registerTools registers all gitctx tools
func (s *Server) registerTools() {
	// context_get tool
	s.mcpServer.AddTool(mcp.NewTool("context_get",
		mcp.WithDescription("Get the full sanitized repository context: repository info, branch, status, recent commits, and working tree diff"),
		mcp.WithNumber("maxCommits",
			mcp.Description("Number of recent commits to include (optional)"),
		),
		mcp.WithNumber("diffContext",
			mcp.Description("Lines of context around each diff hunk (optional)"),
		),
		mcp.WithBoolean("includeUntracked",
			mcp.Description("Include untracked files in status (optional, default true)"),
		),
	), s.handleContextGet)

	// status_get tool
	s.mcpServer.AddTool(mcp.NewTool("status_get",
		mcp.WithDescription("Get the working tree status: staged, modified, untracked, and deleted files"),
		mcp.WithBoolean("includeUntracked",
			mcp.Description("Include untracked files (optional, default true)"),
		),
	), s.handleStatusGet)

	// log_recent tool
	s.mcpServer.AddTool(mcp.NewTool("log_recent",
		mcp.WithDescription("Get recent commits with sanitized messages"),
		mcp.WithNumber("count",
			mcp.Description("Number of commits to return (optional)"),
		),
	), s.handleLogRecent)

	// diff_get tool
	s.mcpServer.AddTool(mcp.NewTool("diff_get",
		mcp.WithDescription("Get the parsed working tree diff with per-file hunks and line counts"),
		mcp.WithNumber("contextLines",
			mcp.Description("Lines of context around each hunk (optional)"),
		),
		mcp.WithBoolean("statOnly",
			mcp.Description("Return only aggregate diff statistics (optional)"),
		),
	), s.handleDiffGet)
}

// registerResources registers all MCP resources
func (s *Server) registerResources() {
	contextResource := mcp.NewResource(
		"gitctx://context",
		"Repository Context",
		mcp.WithResourceDescription("Full sanitized repository context with default extraction options"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(contextResource, s.handleContextResource)
}

// Tool handlers

func (s *Server) handleContextGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := s.contextOptions()
	if n, ok := args["maxCommits"].(float64); ok {
		opts.MaxCommits = int(n)
	}
	if n, ok := args["diffContext"].(float64); ok {
		opts.DiffContext = int(n)
	}
	if b, ok := args["includeUntracked"].(bool); ok {
		opts.IncludeUntracked = b
	}

	gc, err := s.ops.GetContext(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get context: %w", err)
	}

	return jsonResult(gc)
}

func (s *Server) handleStatusGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := git.DefaultStatusOptions()
	if b, ok := args["includeUntracked"].(bool); ok {
		opts.IncludeUntracked = b
	}

	status, err := s.ops.GetStatus(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	gc := git.Context{Status: *status}
	git.SanitizeContext(&gc)
	return jsonResult(gc.Status)
}

func (s *Server) handleLogRecent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	count := s.cfg.Extract.MaxCommits
	if n, ok := args["count"].(float64); ok {
		count = int(n)
	}

	commits, err := s.ops.GetRecentCommits(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get commits: %w", err)
	}

	gc := git.Context{RecentCommits: commits}
	git.SanitizeContext(&gc)
	return jsonResult(gc.RecentCommits)
}

func (s *Server) handleDiffGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	if statOnly, ok := args["statOnly"].(bool); ok && statOnly {
		stats, err := s.ops.GetDiffStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get diff stats: %w", err)
		}
		return jsonResult(stats)
	}

	opts := git.DiffOptions{ContextLines: s.cfg.Extract.DiffContext}
	if n, ok := args["contextLines"].(float64); ok {
		opts.ContextLines = int(n)
	}

	diff, err := s.ops.GetParsedDiff(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get diff: %w", err)
	}

	gc := git.Context{Diff: *diff}
	git.SanitizeContext(&gc)
	return jsonResult(gc.Diff)
}

// Resource handlers

func (s *Server) handleContextResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	gc, err := s.ops.GetContext(ctx, s.contextOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to get context: %w", err)
	}

	jsonData, err := json.MarshalIndent(gc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal context: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// contextOptions derives extraction defaults from the loaded config.
// Sanitization is always on for agent-facing output; the --no-sanitize
// escape hatch exists only on the CLI.
func (s *Server) contextOptions() git.ContextOptions {
	return git.ContextOptions{
		IncludeUntracked: *s.cfg.Extract.IncludeUntracked,
		MaxCommits:       s.cfg.Extract.MaxCommits,
		DiffContext:      s.cfg.Extract.DiffContext,
		SanitizeForAI:    true,
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(result),
			},
		},
	}, nil
}

// Start starts the MCP server on stdio. It blocks until the client
// disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(s.mcpServer)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
