// Package server exposes the tool registry to an agent runtime.
//
// # Protocol
//
// The primary transport is MCP (Model Context Protocol) over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools with their argument schemas
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Tool results
//
// A tool call always produces speakable text. Failures the tool handled itself (a timeout,
// missing credentials, an empty document) come back as a normal result with "isError" set,
// so the agent can read the apology to the user. Only calls that never reached a tool use
// JSON-RPC errors:
//   - -32700: the request line is not JSON
//   - -32601: unknown method
//   - -32602: malformed tools/call params
//   - -32000: unknown tool name
//
// # HTTP
//
// NewHTTPHandler serves the same registry over HTTP for local testing and for runtimes that
// prefer it:
//
//	GET  /healthz          liveness plus OCR engine status
//	GET  /v1/tools         tool definitions
//	POST /v1/tools/{name}  call a tool, the body is the argument object
//	GET  /ws               JSON-RPC over a websocket, one request per message
//
// # Usage
//
//	srv := server.New(reg, logger)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
