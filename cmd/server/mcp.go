// CLAUDE:SUMMARY CLI subcommand serving the disposal-guide MCP tools over stdio.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kasagi/gomical/pkg/api"
)

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	// Stdout carries the MCP session; logs go to stderr only.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := loadConfig(*cfgPath, logger)
	svc := buildService(cfg, logger)

	srv := server.NewMCPServer("gomical", version)
	api.RegisterMCPTools(srv, svc)

	if err := server.ServeStdio(srv); err != nil {
		fmt.Fprintf(os.Stderr, "mcp: %v\n", err)
		os.Exit(1)
	}
}
