package mcptools

import (
	"context"
	"fmt"
	"strings"

	"alltopia/internal/prompt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PromptsTool handles the build_prompts MCP tool.
type PromptsTool struct {
	assembler *prompt.Assembler
}

// NewPromptsTool creates a PromptsTool. A nil assembler uses the default fragment tables.
func NewPromptsTool(assembler *prompt.Assembler) *PromptsTool {
	if assembler == nil {
		assembler = prompt.NewAssembler()
	}
	return &PromptsTool{assembler: assembler}
}

// Definition returns the MCP tool definition for build_prompts.
func (t *PromptsTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Build the analysis, comparison and image prompts for a hypothetical society. " +
				"Send them to any text or image model; this tool does not call one.",
		),
		mcp.WithString("kind",
			mcp.Description("Which prompt to build: analysis, comparison, image or all (default)."),
			mcp.Enum("analysis", "comparison", "image", "all"),
		),
		mcp.WithString("locale",
			mcp.Description("Prompt language: en (default) or es."),
			mcp.Enum(string(prompt.LocaleEnglish), string(prompt.LocaleSpanish)),
		),
	}, characteristicOptions()...)
	return mcp.NewTool("build_prompts", opts...)
}

// Handle processes the build_prompts tool call.
func (t *PromptsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set, err := setArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locale, err := prompt.ParseLocale(stringArg(req, "locale", string(prompt.DefaultLocale)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kind := stringArg(req, "kind", "all")
	var sections []string
	switch kind {
	case "analysis":
		sections = append(sections, t.assembler.BuildAnalysisPrompt(set, locale))
	case "comparison":
		sections = append(sections, t.assembler.BuildComparisonPrompt(set, locale))
	case "image":
		sections = append(sections, t.assembler.BuildImagePrompt(set, locale))
	case "all":
		sections = append(sections,
			"## Analysis prompt\n\n"+t.assembler.BuildAnalysisPrompt(set, locale),
			"## Comparison prompt\n\n"+t.assembler.BuildComparisonPrompt(set, locale),
			"## Image prompt\n\n"+t.assembler.BuildImagePrompt(set, locale),
		)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q: use analysis, comparison, image or all", kind)), nil
	}

	return mcp.NewToolResultText(strings.Join(sections, "\n\n")), nil
}
