package mcptools

import (
	"context"
	"fmt"
	"strings"

	"alltopia/internal/domain"

	"github.com/mark3labs/mcp-go/mcp"
)

// ScoreTool handles the score_society MCP tool.
type ScoreTool struct{}

func NewScoreTool() *ScoreTool {
	return &ScoreTool{}
}

// Definition returns the MCP tool definition for score_society.
func (t *ScoreTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Score a hypothetical society from ten characteristic ratings. " +
				"Returns the average rating and its label (Low, Moderate or High Utopia).",
		),
	}, characteristicOptions()...)
	return mcp.NewTool("score_society", opts...)
}

// Handle processes the score_society tool call.
func (t *ScoreTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set, err := setArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := domain.Score(set)

	var sb strings.Builder
	sb.WriteString("## Utopia Score\n\n")
	for _, e := range set.Entries() {
		sb.WriteString(fmt.Sprintf("- %s: %.1f\n", e.Characteristic, e.Value))
	}
	sb.WriteString(fmt.Sprintf("\n**Average**: %.2f\n", result.Average))
	sb.WriteString(fmt.Sprintf("**Label**: %s\n", result.Label))

	return mcp.NewToolResultText(sb.String()), nil
}
