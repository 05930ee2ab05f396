package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/trellomcp/trello-mcp/internal/common"
	"github.com/trellomcp/trello-mcp/internal/config"
	"github.com/trellomcp/trello-mcp/internal/trello"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "trello-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	// Credentials come from the environment only and are re-read on every
	// request; fail fast here so a misconfigured server does not start.
	creds := trello.EnvCredentials{}
	if _, err := creds.Credentials(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please set TRELLO_API_KEY and TRELLO_API_TOKEN environment variables\n")
		os.Exit(1)
	}

	client := trello.NewClient(cfg.Trello.BaseURL, creds, cfg.Trello.GetTimeout(), logger)
	engine := trello.NewEngine(client, logger)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register all MCP tools
	registerTools(mcpServer, engine, logger)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpOpts := []server.StreamableHTTPOption{server.WithStateLess(true)}
	if cfg.Trello.BasePath != "" {
		httpOpts = append(httpOpts, server.WithEndpointPath(cfg.Trello.BasePath))
	}
	httpServer := server.NewStreamableHTTPServer(mcpServer, httpOpts...)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
