package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jelmer/ridewithgps-go/client"
)

func newPOIsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pois",
		Aliases: []string{"points-of-interest"},
		Short:   "Manage organization points of interest",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List points of interest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			res, err := c.ListPointsOfInterest(cmd.Context(), &client.ListPointsOfInterestParams{
				Name:     changedString(fs, "name"),
				PoiType:  changedString(fs, "poi-type"),
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
	list.Flags().String("poi-type", "", "Filter by type")
	addPageFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a point of interest",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "point of interest", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetPointOfInterest(cmd.Context(), id)
		}),
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a point of interest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			poi, err := c.CreatePointOfInterest(cmd.Context(), poiRequest(cmd.Flags()))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), poi)
		},
	}
	addPOIFlags(create)
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("lat")
	_ = create.MarkFlagRequired("lng")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a point of interest",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "point of interest", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.UpdatePointOfInterest(cmd.Context(), id, poiRequest(cmd.Flags()))
		}),
	}
	addPOIFlags(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a point of interest",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "point of interest", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return deleted(id), c.DeletePointOfInterest(cmd.Context(), id)
		}),
	}

	associate := &cobra.Command{
		Use:   "associate <poi-id> <route-id>",
		Short: "Attach a point of interest to a route",
		Args:  cobra.ExactArgs(2),
		RunE: poiRoute(opts, true),
	}

	disassociate := &cobra.Command{
		Use:   "disassociate <poi-id> <route-id>",
		Short: "Detach a point of interest from a route",
		Args:  cobra.ExactArgs(2),
		RunE: poiRoute(opts, false),
	}

	cmd.AddCommand(list, get, create, update, del, associate, disassociate)
	return cmd
}

func poiRoute(opts *rootOptions, attach bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		poiID, err := parseID("point of interest", args[0])
		if err != nil {
			return err
		}
		routeID, err := parseID("route", args[1])
		if err != nil {
			return err
		}
		c, err := opts.newClient()
		if err != nil {
			return err
		}
		if attach {
			err = c.AssociatePointOfInterestWithRoute(cmd.Context(), poiID, routeID)
		} else {
			err = c.DisassociatePointOfInterestFromRoute(cmd.Context(), poiID, routeID)
		}
		if err != nil {
			return fmt.Errorf("point of interest %d, route %d: %w", poiID, routeID, err)
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"poi_id":     poiID,
			"route_id":   routeID,
			"associated": attach,
		})
	}
}

func addPOIFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Name")
	f.String("description", "", "Description")
	f.Float64("lat", 0, "Latitude")
	f.Float64("lng", 0, "Longitude")
	f.String("poi-type", "", "Type, e.g. food or water")
	f.String("icon", "", "Icon name")
	f.String("address", "", "Street address")
	f.String("phone", "", "Phone number")
	f.String("website", "", "Website URL")
}

func poiRequest(fs *pflag.FlagSet) client.PointOfInterestRequest {
	return client.PointOfInterestRequest{
		Name:        changedString(fs, "name"),
		Description: changedString(fs, "description"),
		Latitude:    changedFloat(fs, "lat"),
		Longitude:   changedFloat(fs, "lng"),
		PoiType:     changedString(fs, "poi-type"),
		Icon:        changedString(fs, "icon"),
		Address:     changedString(fs, "address"),
		Phone:       changedString(fs, "phone"),
		Website:     changedString(fs, "website"),
	}
}
