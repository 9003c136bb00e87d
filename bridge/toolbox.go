package bridge

import (
	"context"

	"github.com/viant/mcp-protocol/schema"
)

// ListTools returns the catalog as MCP tool definitions.
func (s *Service) ListTools(ctx context.Context) []schema.Tool {
	tools := s.catalog.Tools()
	result := make([]schema.Tool, 0, len(tools))
	for _, descriptor := range tools {
		description := descriptor.Description
		inputSchema := descriptor.InputSchema()
		properties := schema.ToolInputSchemaProperties{}
		for name, property := range inputSchema.Properties {
			properties[name] = property
		}
		result = append(result, schema.Tool{
			Name:        descriptor.Name,
			Description: &description,
			InputSchema: schema.ToolInputSchema{
				Type:       inputSchema.Type,
				Properties: properties,
				Required:   inputSchema.Required,
			},
		})
	}
	return result
}

// CallTool invokes a tool and renders its result as a single text block.
func (s *Service) CallTool(ctx context.Context, params *schema.CallToolRequestParams) *schema.CallToolResult {
	result := s.Invoke(ctx, params.Name, params.Arguments)
	return ToolResult(result)
}

// ToolResult converts a result into MCP call output.
func ToolResult(result *Result) *schema.CallToolResult {
	ret := &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{schema.TextContent{Type: "text", Text: result.Text()}},
	}
	if result.Failed() {
		isError := true
		ret.IsError = &isError
	}
	return ret
}
