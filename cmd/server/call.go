// CLAUDE:SUMMARY "call" subcommand: invoke an MCP tool on a running server over QUIC, for smoke tests and scripting.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kasagi/gomical/pkg/mcpquic"
)

// cmdCall connects to a running server over MCP-QUIC and invokes one
// tool. With no tool name it lists the available tools.
func cmdCall(args []string) {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8430", "server address")
	insecure := fs.Bool("insecure", false, "skip TLS verification (self-signed dev certs)")
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := mcpquic.NewClient(*addr, mcpquic.ClientTLSConfig(*insecure))
	if err := c.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer c.Close()

	if fs.NArg() == 0 {
		tools, err := c.ListTools(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list tools: %v\n", err)
			os.Exit(1)
		}
		for _, tool := range tools.Tools {
			fmt.Printf("%s\n    %s\n", tool.Name, tool.Description)
		}
		return
	}

	toolName := fs.Arg(0)
	toolArgs := map[string]any{}
	if fs.NArg() > 1 {
		if err := json.Unmarshal([]byte(fs.Arg(1)), &toolArgs); err != nil {
			fmt.Fprintf(os.Stderr, "arguments must be a JSON object: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := c.CallTool(ctx, toolName, toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call %s: %v\n", toolName, err)
		os.Exit(1)
	}
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}
	if result.IsError {
		os.Exit(1)
	}
}
