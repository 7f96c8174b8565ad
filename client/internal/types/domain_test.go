package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_OptionalFieldsMirrorJSON(t *testing.T) {
	t.Parallel()
	var r Route
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 123,
		"name": "Test Route",
		"distance": 0,
		"visibility": "public",
		"description": null
	}`), &r))

	assert.Equal(t, uint64(123), r.ID)
	require.NotNil(t, r.Name)
	assert.Equal(t, "Test Route", *r.Name)
	// present zero is distinct from absent
	require.NotNil(t, r.Distance)
	assert.Equal(t, 0.0, *r.Distance)
	assert.Nil(t, r.ElevationGain)
	assert.Nil(t, r.Description)
	require.NotNil(t, r.Visibility)
	assert.Equal(t, VisibilityPublic, *r.Visibility)
	assert.Nil(t, r.TrackPoints)
}

func TestRoute_NestedStructures(t *testing.T) {
	t.Parallel()
	var r Route
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 999,
		"track_points": [{"x": -122.0, "y": 37.0, "d": 0.0, "S": 2, "R": 3}, {"x": -122.1, "y": 37.1}],
		"course_points": [{"n": "Water Stop", "t": "water"}]
	}`), &r))

	require.Len(t, r.TrackPoints, 2)
	require.NotNil(t, r.TrackPoints[0].Surface)
	assert.Equal(t, 2, *r.TrackPoints[0].Surface)
	assert.Equal(t, 3, *r.TrackPoints[0].Highway)
	assert.Nil(t, r.TrackPoints[1].D)
	require.Len(t, r.CoursePoints, 1)
	assert.Equal(t, "Water Stop", *r.CoursePoints[0].N)
}

func TestTripTrackPoint_CaseSensitiveKeys(t *testing.T) {
	t.Parallel()
	var p TripTrackPoint
	require.NoError(t, json.Unmarshal([]byte(`{"t": 1700000000, "T": 21.5, "h": 140, "lap": true}`), &p))
	require.NotNil(t, p.T)
	assert.Equal(t, int64(1700000000), *p.T)
	require.NotNil(t, p.Temperature)
	assert.Equal(t, 21.5, *p.Temperature)
	assert.Equal(t, 140.0, *p.HeartRate)
	assert.True(t, *p.Lap)
	assert.Nil(t, p.S)
}

func TestPointOfInterest_LongFormKeys(t *testing.T) {
	t.Parallel()
	var short, long PointOfInterest
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "lat": 45.5, "lng": -122.6, "type": "water"}`), &short))
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "latitude": 45.5, "longitude": -122.6, "poi_type": "water", "tag_names": ["a"]}`), &long))

	for _, p := range []PointOfInterest{short, long} {
		require.NotNil(t, p.Lat)
		assert.Equal(t, 45.5, *p.Lat)
		assert.Equal(t, -122.6, *p.Lng)
		assert.Equal(t, "water", *p.Type)
	}
	assert.Equal(t, []string{"a"}, long.TagNames)

	var bare PointOfInterest
	require.NoError(t, json.Unmarshal([]byte(`{"id": 2}`), &bare))
	assert.Nil(t, bare.Lat)
	assert.Nil(t, bare.Type)
}

func TestMember_Permissions(t *testing.T) {
	t.Parallel()
	var m Member
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "role": "admin", "permissions": {"manage_routes": true}}`), &m))
	require.NotNil(t, m.Permissions)
	assert.True(t, *m.Permissions.ManageRoutes)
	assert.Nil(t, m.Permissions.ManageEvents)
	assert.Nil(t, m.User)
}

func TestListResponse_FlattenedPagination(t *testing.T) {
	t.Parallel()
	var lr ListResponse[Trip]
	require.NoError(t, json.Unmarshal([]byte(`{
		"results": [{"id": 1}, {"id": 2, "name": "Commute"}],
		"record_count": 42,
		"page_size": 20,
		"meta": {"pagination": {"next_page_url": null}}
	}`), &lr))

	require.Len(t, lr.Results, 2)
	assert.Nil(t, lr.Results[0].Name)
	assert.Equal(t, "Commute", *lr.Results[1].Name)
	assert.Equal(t, uint64(42), *lr.RecordCount)
	assert.Equal(t, uint64(20), *lr.PageSize)
	assert.Nil(t, lr.PageCount)
	assert.Nil(t, lr.NextPageURL)
	assert.JSONEq(t, `{"pagination": {"next_page_url": null}}`, string(lr.Meta))
}

func TestSyncResponse_Timestamps(t *testing.T) {
	t.Parallel()
	var sr SyncResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"items": [
			{"id": 1, "item_type": "route", "updated_at": "2025-01-15T10:30:00Z"},
			{"id": 2, "item_type": "trip", "updated_at": "2025-01-16T11:00:00Z", "deleted": true}
		],
		"server_datetime": "2025-01-20T12:00:00Z"
	}`), &sr))

	require.Len(t, sr.Items, 2)
	assert.Equal(t, SyncItemRoute, sr.Items[0].ItemType)
	assert.Nil(t, sr.Items[0].Deleted)
	assert.True(t, *sr.Items[1].Deleted)
	want := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	assert.True(t, time.Time(sr.ServerDatetime).Equal(want))
}

func TestEventRequest_OmitsNilFields(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(EventRequest{Name: ptr("Gravel Day"), MaxAttendees: ptr(uint32(0))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Gravel Day", "max_attendees": 0}`, string(b))
}
