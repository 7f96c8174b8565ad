package main

import (
	"github.com/spf13/cobra"

	"github.com/jelmer/ridewithgps-go/client"
)

func newTripsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List, inspect and delete recorded trips",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			// Trip and route filters share a layout.
			res, err := c.ListTrips(cmd.Context(), (*client.ListTripsParams)(routeFilters(cmd.Flags())))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	addDistanceFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a trip with recorded telemetry",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "trip", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetTrip(cmd.Context(), id)
		}),
	}

	polyline := &cobra.Command{
		Use:   "polyline <id>",
		Short: "Show the encoded polyline of a trip",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "trip", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetTripPolyline(cmd.Context(), id)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "trip", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return deleted(id), c.DeleteTrip(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, get, polyline, del)
	return cmd
}
