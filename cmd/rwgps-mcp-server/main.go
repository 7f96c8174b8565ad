// Command rwgps-mcp-server exposes the RideWithGPS API as MCP tools over
// stdio or streamable HTTP.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/mcp"
)

func main() {
	// A missing .env is fine; the environment may already carry RWGPS_*.
	_ = godotenv.Load()

	if err := mcp.RunMCPServer(); err != nil {
		log.Error().Err(err).Msg("MCP server exited with error")
		os.Exit(1)
	}
}
