// Package mcp wires the lifecycle controller and SDK into an MCP tool
// server so agent hosts can drive the job pipeline.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/missionhud/missionhud/client"
	"github.com/missionhud/missionhud/controller"
	"github.com/missionhud/missionhud/internal/config"
	"github.com/missionhud/missionhud/mcp/handlers"
)

const serverName = "missionhud-mcp"
const serverVersion = "0.1.0"

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunMCPServer starts the MCP server on stdio.
func RunMCPServer() error {
	cfg := config.Load()
	cfg.Init()

	ctrlCfg, err := controller.LoadConfig()
	if err != nil {
		return err
	}
	// Tool calls have no exit animation to wait for.
	ctrlCfg.AnimationWindow = 0

	sdk := client.New(cfg.JobServiceURL)
	ctrl := controller.New(sdk, ctrlCfg)
	defer func() { _ = ctrl.Close() }()

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewJobHandler(ctrl), "job")
	registerHandler(s, handlers.NewProgressHandler(sdk), "progress")

	log.Info().Str("job_service_url", cfg.JobServiceURL).Msg("Starting Mission HUD MCP server (stdio transport)")
	return server.ServeStdio(s)
}
