package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestListRoutesParams_OmitsUnsetFilters(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		params *ListRoutesParams
		want   map[string]string
	}{
		{"nil params", nil, map[string]string{}},
		{"empty params", &ListRoutesParams{}, map[string]string{}},
		{
			"distance and visibility",
			&ListRoutesParams{MinDistance: ptr(10000.0), Visibility: ptr(VisibilityPublic)},
			map[string]string{"min_distance": "10000", "visibility": "public"},
		},
		{
			"zero is still sent when set",
			&ListRoutesParams{MaxElevationGain: ptr(0.0), Page: ptr(uint32(0))},
			map[string]string{"max_elevation_gain": "0", "page": "0"},
		},
		{
			"everything",
			&ListRoutesParams{
				Name: ptr("loop"), Visibility: ptr(VisibilityUnlisted),
				MinDistance: ptr(1.5), MaxDistance: ptr(20000.0),
				MinElevationGain: ptr(100.0), MaxElevationGain: ptr(900.25),
				Page: ptr(uint32(2)), PageSize: ptr(uint32(50)),
			},
			map[string]string{
				"name": "loop", "visibility": "unlisted",
				"min_distance": "1.5", "max_distance": "20000",
				"min_elevation_gain": "100", "max_elevation_gain": "900.25",
				"page": "2", "page_size": "50",
			},
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := c.params.Values()
			assert.Len(t, got, len(c.want))
			for k, v := range c.want {
				assert.Equal(t, []string{v}, got[k], "key %s", k)
			}
		})
	}
}

func TestOtherListParams_OnlySetKeys(t *testing.T) {
	t.Parallel()

	trips := (&ListTripsParams{MaxDistance: ptr(500.0)}).Values()
	assert.Equal(t, "max_distance=500", trips.Encode())

	cols := (&ListCollectionsParams{PageSize: ptr(uint32(10))}).Values()
	assert.Equal(t, "page_size=10", cols.Encode())

	events := (&ListEventsParams{Visibility: ptr(VisibilityPrivate)}).Values()
	assert.Equal(t, "visibility=private", events.Encode())

	pois := (&ListPointsOfInterestParams{PoiType: ptr("water")}).Values()
	assert.Equal(t, "poi_type=water", pois.Encode())

	members := (&ListMembersParams{Role: ptr("admin"), Status: ptr("active")}).Values()
	assert.Equal(t, "role=admin&status=active", members.Encode())

	var nilMembers *ListMembersParams
	assert.Empty(t, nilMembers.Values())
}
