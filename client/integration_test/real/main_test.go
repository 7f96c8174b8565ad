//go:build integration
// +build integration

package client_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain loads credentials for the live API. Tests are skipped, not failed,
// when RWGPS_API_KEY or RWGPS_AUTH_TOKEN is missing.
func TestMain(m *testing.M) {
	if err := godotenv.Load("../../../.env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}
	os.Exit(m.Run())
}

func requireLive(t *testing.T) {
	t.Helper()
	if os.Getenv("RWGPS_API_KEY") == "" || os.Getenv("RWGPS_AUTH_TOKEN") == "" {
		t.Skip("RWGPS_API_KEY and RWGPS_AUTH_TOKEN required for live tests")
	}
}
