package main

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	var since string
	var window time.Duration

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "List items changed since a point in time",
		Long: "List routes, trips, events and collections changed since --since (ISO-8601)\n" +
			"or within the last --within duration. Feed server_datetime into the next run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t time.Time
			switch {
			case since != "":
				dt, err := strfmt.ParseDateTime(since)
				if err != nil {
					return fmt.Errorf("invalid --since %q: %w", since, err)
				}
				t = time.Time(dt)
			case window > 0:
				t = time.Now().Add(-window)
			default:
				return fmt.Errorf("one of --since or --within is required")
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			res, err := c.GetChangesSince(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "ISO-8601 timestamp, e.g. 2024-01-01T00:00:00Z")
	cmd.Flags().DurationVar(&window, "within", 0, "Look back this far instead of --since, e.g. 24h")
	cmd.MarkFlagsMutuallyExclusive("since", "within")

	return cmd
}
