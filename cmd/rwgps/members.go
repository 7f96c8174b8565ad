package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jelmer/ridewithgps-go/client"
)

func newMembersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage organization members",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			res, err := c.ListMembers(cmd.Context(), &client.ListMembersParams{
				Name:     changedString(fs, "name"),
				Role:     changedString(fs, "role"),
				Status:   changedString(fs, "status"),
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
	list.Flags().String("role", "", "Filter by role")
	list.Flags().String("status", "", "Filter by status")
	addPageFlags(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a member",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "member", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.GetMember(cmd.Context(), id)
		}),
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a member's role, status or permissions",
		Args:  cobra.ExactArgs(1),
		RunE: byID(opts, "member", func(cmd *cobra.Command, c *client.Client, id uint64) (any, error) {
			return c.UpdateMember(cmd.Context(), id, memberRequest(cmd.Flags()))
		}),
	}
	f := update.Flags()
	f.String("role", "", "New role")
	f.String("status", "", "New status")
	f.Bool("manage-routes", false, "Allow managing routes")
	f.Bool("manage-events", false, "Allow managing events")
	f.Bool("manage-members", false, "Allow managing members")
	f.Bool("view-analytics", false, "Allow viewing analytics")

	cmd.AddCommand(list, get, update)
	return cmd
}

func memberRequest(fs *pflag.FlagSet) client.UpdateMemberRequest {
	req := client.UpdateMemberRequest{
		Role:   changedString(fs, "role"),
		Status: changedString(fs, "status"),
	}
	perms := client.MemberPermissions{
		ManageRoutes:  changedBool(fs, "manage-routes"),
		ManageEvents:  changedBool(fs, "manage-events"),
		ManageMembers: changedBool(fs, "manage-members"),
		ViewAnalytics: changedBool(fs, "view-analytics"),
	}
	if perms != (client.MemberPermissions{}) {
		req.Permissions = &perms
	}
	return req
}
