// Package mcptools exposes scoring and prompt assembly as MCP tools.
//
// Each tool follows the same pattern:
// - A struct with its dependencies injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Tools never call an AI provider; they return what a client needs to call one itself.
package mcptools

import (
	"fmt"
	"strings"

	"alltopia/internal/domain"

	"github.com/mark3labs/mcp-go/mcp"
)

// argName turns "General Well-being" into "general_well_being".
func argName(c domain.Characteristic) string {
	name := strings.ToLower(c.String())
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	return name
}

// characteristicOptions declares one optional numeric argument per characteristic.
func characteristicOptions() []mcp.ToolOption {
	opts := make([]mcp.ToolOption, 0, domain.CharacteristicCount)
	for _, c := range domain.Characteristics() {
		opts = append(opts, mcp.WithNumber(argName(c),
			mcp.Description(fmt.Sprintf("%s rating, %.0f to %.0f. Defaults to %.0f.", c, domain.MinValue, domain.MaxValue, domain.DefaultValue)),
			mcp.Min(domain.MinValue),
			mcp.Max(domain.MaxValue),
		))
	}
	return opts
}

// setArg reads the characteristic arguments; absent ones keep the default value.
// JSON numbers arrive as float64.
func setArg(req mcp.CallToolRequest) (domain.CharacteristicSet, error) {
	args := req.GetArguments()
	values := make(map[string]float64, domain.CharacteristicCount)
	for _, c := range domain.Characteristics() {
		raw, present := args[argName(c)]
		if !present || raw == nil {
			continue
		}
		v, ok := raw.(float64)
		if !ok {
			return domain.CharacteristicSet{}, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, argName(c))
		}
		values[c.String()] = v
	}
	return domain.SetFromMap(values)
}

func stringArg(req mcp.CallToolRequest, key, defaultVal string) string {
	v, ok := req.GetArguments()[key].(string)
	if !ok || v == "" {
		return defaultVal
	}
	return v
}
