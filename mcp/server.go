// Package mcp serves RideWithGPS client operations as MCP tools over stdio or
// streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client"
	"github.com/jelmer/ridewithgps-go/internal/logger"
	"github.com/jelmer/ridewithgps-go/mcp/internal/handlers"
)

// Config holds the MCP server settings. Environment variables are parsed
// from the RWGPS_MCP_ prefix; client credentials come from RWGPS_*.
type Config struct {
	ServerName        string        `envconfig:"SERVER_NAME" default:"rwgps-mcp-server"`
	ServerVersion     string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":11546"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout   time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout   time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	HeartbeatInterval time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"30s"`
}

// LoadConfig reads Config from RWGPS_MCP_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("RWGPS_MCP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every RideWithGPS tool registered.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	registerers := []struct {
		name string
		h    toolRegisterer
	}{
		{"user", handlers.NewUserHandler(c)},
		{"route", handlers.NewRouteHandler(c)},
		{"trip", handlers.NewTripHandler(c)},
		{"collection", handlers.NewCollectionHandler(c)},
		{"event", handlers.NewEventHandler(c)},
		{"sync", handlers.NewSyncHandler(c)},
	}
	for _, r := range registerers {
		if err := r.h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", r.name, err)
		}
	}
	return s, nil
}

// RunMCPServer builds the client from the environment and serves until the
// transport ends or a termination signal arrives.
func RunMCPServer() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	log.Logger = logger.New(cfg.ServerName, logger.Options{Level: parseLogLevel(cfg.LogLevel)})

	rwgps, err := client.NewFromEnv()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("base_url", rwgps.BaseURL()).Msg("Client created")

	s, err := NewServer(rwgps, cfg.ServerName, cfg.ServerVersion)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		// Stdio transport (for desktop hosts, launched processes)
		log.Info().Msg("Starting RideWithGPS MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(s, cfg)
}

func serveHTTP(s *server.MCPServer, cfg *Config) error {
	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting RideWithGPS MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(cfg.HeartbeatInterval),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)

		sig, ok := <-sigChan
		if !ok {
			return
		}
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
