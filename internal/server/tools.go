package server

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// ToolDefinitions returns the registered tools in registration order.
func (s *Server) ToolDefinitions() []Tool {
	list := s.reg.List()
	defs := make([]Tool, 0, len(list))
	for _, t := range list {
		defs = append(defs, Tool{
			Name:        string(t.Name),
			Description: t.Description,
			InputSchema: t.Schema,
		})
	}
	return defs
}

// handleToolsList responds to the tools/list request
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.ToolDefinitions(),
		},
	}
}
