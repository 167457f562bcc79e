package mcptools

import (
	"alltopia/internal/prompt"

	"github.com/mark3labs/mcp-go/server"
)

const serverInstructions = "Alltopia scores hypothetical societies on ten characteristics " +
	"(each rated 0 to 10) and builds prompts for analysing and illustrating them. " +
	"Use score_society for the average and label, and build_prompts to get prompt text."

// NewServer creates the MCP server with every tool registered.
func NewServer(version string, assembler *prompt.Assembler) *server.MCPServer {
	s := server.NewMCPServer(
		"alltopia",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	scoreTool := NewScoreTool()
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	promptsTool := NewPromptsTool(assembler)
	s.AddTool(promptsTool.Definition(), promptsTool.Handle)

	return s
}
