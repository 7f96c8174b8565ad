package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jelmer/ridewithgps-go/client"
)

func newEventsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			res, err := c.ListEvents(cmd.Context(), &client.ListEventsParams{
				Name:       changedString(fs, "name"),
				Visibility: changedVisibility(fs),
				Page:       changedUint32(fs, "page"),
				PageSize:   changedUint32(fs, "page-size"),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	list.Flags().String("name", "", "Filter by name")
	addVisibilityFlag(list)
	addPageFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an event",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "event", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetEvent(cmd.Context(), id)
		}),
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ev, err := c.CreateEvent(cmd.Context(), eventRequest(cmd.Flags()))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ev)
		},
	}
	addEventFlags(create)
	_ = create.MarkFlagRequired("name")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of an event",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "event", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.UpdateEvent(cmd.Context(), id, eventRequest(cmd.Flags()))
		}),
	}
	addEventFlags(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "event", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return deleted(id), c.DeleteEvent(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func addEventFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Event name")
	f.String("description", "", "Description")
	f.String("location", "", "Location")
	addVisibilityFlag(cmd)
	f.String("starts-at", "", "Start time (ISO-8601)")
	f.String("ends-at", "", "End time (ISO-8601)")
	f.String("registration-opens-at", "", "Registration opening time (ISO-8601)")
	f.String("registration-closes-at", "", "Registration closing time (ISO-8601)")
	f.Bool("registration-required", false, "Require registration")
	f.Uint32("max-attendees", 0, "Maximum number of attendees")
}

func eventRequest(fs *pflag.FlagSet) client.EventRequest {
	return client.EventRequest{
		Name:                 changedString(fs, "name"),
		Description:          changedString(fs, "description"),
		Location:             changedString(fs, "location"),
		Visibility:           changedVisibility(fs),
		StartsAt:             changedString(fs, "starts-at"),
		EndsAt:               changedString(fs, "ends-at"),
		RegistrationOpensAt:  changedString(fs, "registration-opens-at"),
		RegistrationClosesAt: changedString(fs, "registration-closes-at"),
		RegistrationRequired: changedBool(fs, "registration-required"),
		MaxAttendees:         changedUint32(fs, "max-attendees"),
	}
}
