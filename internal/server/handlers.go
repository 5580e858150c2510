package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "get_weather", "search_news").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Content is one block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the MCP result of tools/call.
type CallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool's spoken text in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<reply>"}],
//	  "isError": false
//	}
//
// Unknown tools return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if params.Name == "" {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", "missing tool name")
	}

	res, err := s.reg.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  callResult(res),
	}
}

func callResult(res tools.Result) CallResult {
	return CallResult{
		Content: []Content{{Type: "text", Text: res.Text}},
		IsError: res.Failed(),
	}
}

// isUnknownTool reports whether err came from resolving a tool name.
func isUnknownTool(err error) bool {
	return errors.Is(err, tools.ErrUnknownTool) || errors.Is(err, tools.ErrToolNotRegistered)
}
