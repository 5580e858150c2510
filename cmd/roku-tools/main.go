// Package main provides the roku-tools binary: the voice assistant's tool collection served
// over MCP, with helpers to list and call tools and to chat with the assistant from a terminal.
//
// Usage:
//
//	roku-tools [flags] <command> [args]
//
// Commands:
//
//	serve   - Serve the tools over MCP on stdio (and optionally HTTP)
//	tools   - List the available tools
//	call    - Call one tool with JSON arguments
//	chat    - Talk to the assistant through Gemini
//	version - Print version information
package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/roku-tools/cmd/roku-tools/commands"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	commands.SetBuildInfo(Version, BuildTime, GitCommit)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
