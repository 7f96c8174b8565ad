// Command rwgps is a command-line client for the RideWithGPS API. Every
// subcommand prints its result as indented JSON on stdout; logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jelmer/ridewithgps-go/client"
	"github.com/jelmer/ridewithgps-go/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// envConfig mirrors client.Config without the required key so flags can
// supply the API key instead.
type envConfig struct {
	BaseURL   string `envconfig:"BASE_URL" default:"https://ridewithgps.com"`
	APIKey    string `envconfig:"API_KEY"`
	AuthToken string `envconfig:"AUTH_TOKEN"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	baseURL   string
	apiKey    string
	authToken string
	envFile   string
	debug     bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "rwgps",
		Short:         "Command-line client for the RideWithGPS API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			log.Logger = logger.New("rwgps", logger.Options{
				Writer:  cmd.ErrOrStderr(),
				Console: true,
				Level:   logger.LevelFor(opts.debug),
			})
			log.Debug().Msg("debug logging enabled")
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.baseURL, "base-url", "", "API base URL (default $RWGPS_BASE_URL or https://ridewithgps.com)")
	pf.StringVar(&opts.apiKey, "api-key", "", "API key (default $RWGPS_API_KEY)")
	pf.StringVar(&opts.authToken, "auth-token", "", "Auth token (default $RWGPS_AUTH_TOKEN)")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file loaded before reading RWGPS_* variables")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging including HTTP dumps")

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newWhoamiCmd(opts))
	rootCmd.AddCommand(newRoutesCmd(opts))
	rootCmd.AddCommand(newTripsCmd(opts))
	rootCmd.AddCommand(newCollectionsCmd(opts))
	rootCmd.AddCommand(newEventsCmd(opts))
	rootCmd.AddCommand(newSyncCmd(opts))
	rootCmd.AddCommand(newPOIsCmd(opts))
	rootCmd.AddCommand(newMembersCmd(opts))

	return rootCmd
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && (explicit || !os.IsNotExist(err)) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// newClient resolves settings (flags over RWGPS_* env) and builds a client.
func (o *rootOptions) newClient() (*client.Client, error) {
	var env envConfig
	if err := envconfig.Process("RWGPS", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	baseURL := firstNonEmpty(o.baseURL, env.BaseURL)
	apiKey := firstNonEmpty(o.apiKey, env.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required: pass --api-key or set RWGPS_API_KEY")
	}

	copts := []client.Option{
		client.WithLogger(log.Logger),
		client.WithDebugLogging(o.debug || env.Debug),
	}
	if tok := firstNonEmpty(o.authToken, env.AuthToken); tok != "" {
		copts = append(copts, client.WithAuthToken(tok))
	}

	log.Debug().Str("base_url", baseURL).Bool("has_token", o.authToken != "" || env.AuthToken != "").Msg("creating client")
	return client.New(baseURL, apiKey, copts...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID parses a positional resource ID; IDs are positive.
func parseID(what, s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", what, s)
	}
	return id, nil
}
