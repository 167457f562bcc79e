package main

import (
	"fmt"
	"os"

	"alltopia/internal/logger"
	"alltopia/internal/mcptools"
	"alltopia/internal/prompt"

	"github.com/mark3labs/mcp-go/server"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("alltopia-mcp", version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	appLogger, err := logger.New(logger.Config{
		Level:      os.Getenv("LOG_LEVEL"),
		Encoding:   "console",
		OutputPath: "stderr",
		Service:    "alltopia-mcp",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()

	s := mcptools.NewServer(version, prompt.NewAssembler())

	appLogger.Info("Serving MCP over stdio", zap.String("version", version))
	if err := server.ServeStdio(s); err != nil {
		appLogger.Error("MCP server stopped", zap.Error(err))
		os.Exit(1)
	}
}
