package main

import (
	"github.com/spf13/cobra"

	"github.com/jelmer/ridewithgps-go/client"
)

func newCollectionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List and inspect collections",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			res, err := c.ListCollections(cmd.Context(), &client.ListCollectionsParams{
				Name:     changedString(fs, "name"),
				Page:     changedUint32(fs, "page"),
				PageSize: changedUint32(fs, "page-size"),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	list.Flags().String("name", "", "Filter by name")
	addPageFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a collection with its routes and trips",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "collection", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetCollection(cmd.Context(), id)
		}),
	}

	pinned := &cobra.Command{
		Use:   "pinned",
		Short: "Show the pinned collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			coll, err := c.GetPinnedCollection(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), coll)
		},
	}

	cmd.AddCommand(list, get, pinned)
	return cmd
}
