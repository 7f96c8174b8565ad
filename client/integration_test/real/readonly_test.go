//go:build integration
// +build integration

package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelmer/ridewithgps-go/client"
)

// TestReadOnlyTour exercises the read endpoints of the live API without
// modifying the account.
func TestReadOnlyTour(t *testing.T) {
	requireLive(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := client.NewFromEnv()
	require.NoError(t, err)

	user, err := c.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	size := uint32(5)
	routes, err := c.ListRoutes(ctx, &client.ListRoutesParams{PageSize: &size})
	require.NoError(t, err)
	if len(routes.Results) > 0 {
		r, err := c.GetRoute(ctx, routes.Results[0].ID)
		require.NoError(t, err)
		assert.Equal(t, routes.Results[0].ID, r.ID)

		p, err := c.GetRoutePolyline(ctx, r.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Polyline)
	}

	trips, err := c.ListTrips(ctx, &client.ListTripsParams{PageSize: &size})
	require.NoError(t, err)
	if len(trips.Results) > 0 {
		_, err := c.GetTrip(ctx, trips.Results[0].ID)
		require.NoError(t, err)
	}

	sync, err := c.GetChangesSince(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.False(t, time.Time(sync.ServerDatetime).IsZero())
}

func TestMissingRouteIsNotFound(t *testing.T) {
	requireLive(t)

	c, err := client.NewFromEnv()
	require.NoError(t, err)

	_, err = c.GetRoute(context.Background(), 1<<62)
	assert.True(t, client.IsNotFound(err) || client.IsAuth(err), "got %v", err)
}
