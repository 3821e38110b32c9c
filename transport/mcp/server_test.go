package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

const testProblem = "2\n0 1\n2 3\n"

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func TestHandleSolve(t *testing.T) {
	s := NewServer("test", 1000)
	ctx := context.Background()

	result, err := s.handleSolve(ctx, callRequest("solve_problem", map[string]interface{}{
		"problem": testProblem,
	}))
	if err != nil {
		t.Fatalf("handleSolve failed: %v", err)
	}
	text := textOf(t, result)
	if !strings.Contains(text, "Status: done") {
		t.Errorf("Expected done status, got: %s", text)
	}
	if !strings.Contains(text, "Turns:") {
		t.Errorf("Expected turn count, got: %s", text)
	}
}

func TestHandleSolveMissingProblem(t *testing.T) {
	s := NewServer("test", 1000)
	ctx := context.Background()

	result, err := s.handleSolve(ctx, callRequest("solve_problem", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handleSolve returned transport error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected an error result for a missing problem")
	}
}

func TestHandleSolveTurnLimit(t *testing.T) {
	s := NewServer("test", 1000)
	ctx := context.Background()

	result, err := s.handleSolve(ctx, callRequest("solve_problem", map[string]interface{}{
		"problem":   testProblem,
		"max_turns": float64(2),
	}))
	if err != nil {
		t.Fatalf("handleSolve failed: %v", err)
	}
	text := textOf(t, result)
	if !strings.Contains(text, "turn limit") {
		t.Errorf("Expected turn limit status, got: %s", text)
	}
}

func TestHandleVerify(t *testing.T) {
	s := NewServer("test", 1000)
	ctx := context.Background()

	result, err := s.handleVerify(ctx, callRequest("verify_transcript", map[string]interface{}{
		"problem":    testProblem,
		"transcript": "PRQLPRQ\nPRQLPRQ\n",
	}))
	if err != nil {
		t.Fatalf("handleVerify failed: %v", err)
	}
	if text := textOf(t, result); !strings.Contains(text, "VALID") {
		t.Errorf("Expected VALID, got: %s", text)
	}

	result, err = s.handleVerify(ctx, callRequest("verify_transcript", map[string]interface{}{
		"problem":    testProblem,
		"transcript": "PRQ\nPRQ\n",
	}))
	if err != nil {
		t.Fatalf("handleVerify failed: %v", err)
	}
	if text := textOf(t, result); !strings.Contains(text, "INVALID") {
		t.Errorf("Expected INVALID, got: %s", text)
	}
}

func TestHandleRender(t *testing.T) {
	s := NewServer("test", 1000)
	ctx := context.Background()

	result, err := s.handleRender(ctx, callRequest("render_problem", map[string]interface{}{
		"problem": testProblem,
	}))
	if err != nil {
		t.Fatalf("handleRender failed: %v", err)
	}
	if text := textOf(t, result); !strings.Contains(text, "cranes:") {
		t.Errorf("Expected a board rendering, got: %s", text)
	}
}
