package mcptools

import (
	"context"
	"testing"

	"alltopia/internal/domain"
	"alltopia/internal/prompt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestArgName(t *testing.T) {
	assert.Equal(t, "general_well_being", argName(domain.GeneralWellBeing))
	assert.Equal(t, "happiness_and_personal_fulfillment", argName(domain.HappinessAndFulfillment))
}

func TestScoreTool_Definition(t *testing.T) {
	def := NewScoreTool().Definition()
	assert.Equal(t, "score_society", def.Name)
	assert.Len(t, def.InputSchema.Properties, domain.CharacteristicCount)
	assert.Empty(t, def.InputSchema.Required)
}

func TestScoreTool_DefaultsToModerate(t *testing.T) {
	res, err := NewScoreTool().Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(res)
	assert.Contains(t, text, "**Average**: 5.00")
	assert.Contains(t, text, "**Label**: Moderate Utopia")
}

func TestScoreTool_High(t *testing.T) {
	args := map[string]interface{}{}
	for _, c := range domain.Characteristics() {
		args[argName(c)] = 9.0
	}
	res, err := NewScoreTool().Handle(context.Background(), makeReq(args))
	require.NoError(t, err)
	assert.Contains(t, resultText(res), "High Utopia")
}

func TestScoreTool_RejectsBadValues(t *testing.T) {
	tool := NewScoreTool()

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"freedom": 12.0}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"freedom": "high"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestPromptsTool_Image(t *testing.T) {
	tool := NewPromptsTool(nil)
	args := map[string]interface{}{
		"kind":           "image",
		"sustainability": 10.0,
	}

	res, err := tool.Handle(context.Background(), makeReq(args))
	require.NoError(t, err)
	require.False(t, res.IsError)

	set, err := domain.SetFromMap(map[string]float64{"Sustainability": 10})
	require.NoError(t, err)
	assert.Equal(t, prompt.BuildImagePrompt(set, prompt.LocaleEnglish), resultText(res))
}

func TestPromptsTool_AllSpanish(t *testing.T) {
	res, err := NewPromptsTool(nil).Handle(context.Background(), makeReq(map[string]interface{}{"locale": "es"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(res)
	assert.Contains(t, text, "## Analysis prompt")
	assert.Contains(t, text, "## Comparison prompt")
	assert.Contains(t, text, "## Image prompt")
	assert.Contains(t, text, "Igualdad Social")
}

func TestPromptsTool_RejectsUnknownKindAndLocale(t *testing.T) {
	tool := NewPromptsTool(nil)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"kind": "poem"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"locale": "de"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("test", nil))
}
