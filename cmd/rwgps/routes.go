package main

import (
	"github.com/spf13/cobra"

	"github.com/jelmer/ridewithgps-go/client"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List, inspect and delete planned routes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			res, err := c.ListRoutes(cmd.Context(), routeFilters(cmd.Flags()))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	addDistanceFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a route with track points and cues",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "route", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetRoute(cmd.Context(), id)
		}),
	}

	polyline := &cobra.Command{
		Use:   "polyline <id>",
		Short: "Show the encoded polyline of a route",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "route", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetRoutePolyline(cmd.Context(), id)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a route",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "route", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return deleted(id), c.DeleteRoute(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, get, polyline, del)
	return cmd
}

// byID adapts an operation on a single numeric ID into a RunE.
func byID(opts *rootOptions, what string, fn func(*cobra.Command, *client.Client, uint64) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(what, args[0])
		if err != nil {
			return err
		}
		c, err := opts.newClient()
		if err != nil {
			return err
		}
		out, err := fn(cmd, c, id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}
}

type deleteResult struct {
	ID      uint64 `json:"id"`
	Deleted bool   `json:"deleted"`
}

func deleted(id uint64) deleteResult { return deleteResult{ID: id, Deleted: true} }
