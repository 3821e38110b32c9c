// Package mcp exposes the crane yard solver over the Model Context
// Protocol's stdio transport, so agent tooling can solve, verify and
// inspect problems without shelling out.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harborsim/craneyard/yard/engine"
	"github.com/harborsim/craneyard/yard/problem"
	"github.com/harborsim/craneyard/yard/render"
	"github.com/harborsim/craneyard/yard/solver"
)

// Server wraps an MCP server with the solver tools registered.
type Server struct {
	mcpServer *server.MCPServer
	maxTurns  int
}

// NewServer creates the MCP server. maxTurns is the default turn ceiling
// for solve requests that do not set their own.
func NewServer(version string, maxTurns int) *Server {
	s := &Server{maxTurns: maxTurns}
	s.mcpServer = server.NewMCPServer(
		"Crane Yard Solver",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Crane Yard Solver - MCP Interface

Solves the N-crane container yard puzzle: containers enter from per-row
intake queues, must reach per-row output slots in order, and N cranes move
them under collision and traversal rules.

PROBLEM FORMAT:
First line: the yard size N. Then N lines of whitespace-separated container
ids, one line per intake queue, in arrival order.

AVAILABLE TOOLS:
- solve_problem: produce a per-crane action transcript for a problem
- verify_transcript: replay a transcript and check delivery order
- render_problem: draw the initial board for a problem`),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// registerTools registers all solver tools.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_problem",
		Description: "Solve a crane yard problem and return the per-crane action transcript",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"problem": map[string]interface{}{
					"type":        "string",
					"description": "Problem text: size N, then N queue lines",
				},
				"max_turns": map[string]interface{}{
					"type":        "number",
					"description": "Turn ceiling (optional)",
				},
			},
			Required: []string{"problem"},
		},
	}, s.handleSolve)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "verify_transcript",
		Description: "Replay a transcript against a problem and verify delivery order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"problem": map[string]interface{}{
					"type":        "string",
					"description": "Problem text: size N, then N queue lines",
				},
				"transcript": map[string]interface{}{
					"type":        "string",
					"description": "Per-crane action lines, newline separated",
				},
			},
			Required: []string{"problem", "transcript"},
		},
	}, s.handleVerify)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "render_problem",
		Description: "Render the initial board of a problem as text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"problem": map[string]interface{}{
					"type":        "string",
					"description": "Problem text: size N, then N queue lines",
				},
			},
			Required: []string{"problem"},
		},
	}, s.handleRender)
}

// parseProblemArg reads the "problem" argument of a tool call.
func parseProblemArg(request mcp.CallToolRequest) (*problem.Problem, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("missing arguments")
	}
	text, _ := args["problem"].(string)
	if text == "" {
		return nil, fmt.Errorf("problem is required")
	}
	return problem.Parse(strings.NewReader(text))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := parseProblemArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	maxTurns := s.maxTurns
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if v, ok := args["max_turns"].(float64); ok && v > 0 {
			maxTurns = int(v)
		}
	}

	sv, err := solver.New(p, maxTurns)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sol, err := sv.Solve()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Status: %s\nTurns: %d\n\n%s\n",
		sol.Status, sol.Turns, strings.Join(sol.Lines(), "\n"))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleVerify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := parseProblemArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := request.Params.Arguments.(map[string]interface{})
	transcript, _ := args["transcript"].(string)
	lines := splitLines(transcript)
	if len(lines) == 0 {
		return mcp.NewToolResultError("transcript is required"), nil
	}

	if err := solver.Verify(p, lines); err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("INVALID: %v", err)), nil
	}
	return mcp.NewToolResultText("VALID: all containers delivered in order"), nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := parseProblemArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := engine.NewState(p.Queues)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.Board(st)), nil
}

// splitLines splits transcript text into non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
