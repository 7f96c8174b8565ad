package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jelmer/ridewithgps-go/client"
)

// The helpers below return nil for flags the user did not pass, so only
// explicitly given values are sent to the API.

func changedString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetString(name)
	return &v
}

func changedFloat(fs *pflag.FlagSet, name string) *float64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetFloat64(name)
	return &v
}

func changedUint32(fs *pflag.FlagSet, name string) *uint32 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetUint32(name)
	return &v
}

func changedBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetBool(name)
	return &v
}

func changedVisibility(fs *pflag.FlagSet) *client.Visibility {
	s := changedString(fs, "visibility")
	if s == nil {
		return nil
	}
	v := client.Visibility(*s)
	return &v
}

// addPageFlags registers paging flags. They default to zero and are only
// sent when given, so the server's own paging applies otherwise.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32("page", 0, "Page number, starting at 1")
	cmd.Flags().Uint32("page-size", 0, "Results per page")
}

func addVisibilityFlag(cmd *cobra.Command) {
	cmd.Flags().String("visibility", "", "Visibility: public, private or unlisted")
}

func addDistanceFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Filter by name")
	addVisibilityFlag(cmd)
	cmd.Flags().Float64("min-distance", 0, "Minimum distance in meters")
	cmd.Flags().Float64("max-distance", 0, "Maximum distance in meters")
	cmd.Flags().Float64("min-elevation-gain", 0, "Minimum elevation gain in meters")
	cmd.Flags().Float64("max-elevation-gain", 0, "Maximum elevation gain in meters")
	addPageFlags(cmd)
}

func routeFilters(fs *pflag.FlagSet) *client.ListRoutesParams {
	return &client.ListRoutesParams{
		Name:             changedString(fs, "name"),
		Visibility:       changedVisibility(fs),
		MinDistance:      changedFloat(fs, "min-distance"),
		MaxDistance:      changedFloat(fs, "max-distance"),
		MinElevationGain: changedFloat(fs, "min-elevation-gain"),
		MaxElevationGain: changedFloat(fs, "max-elevation-gain"),
		Page:             changedUint32(fs, "page"),
		PageSize:         changedUint32(fs, "page-size"),
	}
}
