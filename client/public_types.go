package client

import "github.com/jelmer/ridewithgps-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	CreateAuthTokenRequest = types.CreateAuthTokenRequest
	EventRequest           = types.EventRequest
	PointOfInterestRequest = types.PointOfInterestRequest
	UpdateMemberRequest    = types.UpdateMemberRequest

	// List filters
	ListRoutesParams           = types.ListRoutesParams
	ListTripsParams            = types.ListTripsParams
	ListCollectionsParams      = types.ListCollectionsParams
	ListEventsParams           = types.ListEventsParams
	ListPointsOfInterestParams = types.ListPointsOfInterestParams
	ListMembersParams          = types.ListMembersParams

	// Domain entities
	Visibility        = types.Visibility
	User              = types.User
	Route             = types.Route
	TrackPoint        = types.TrackPoint
	CoursePoint       = types.CoursePoint
	Photo             = types.Photo
	Polyline          = types.Polyline
	Trip              = types.Trip
	TripTrackPoint    = types.TripTrackPoint
	Gear              = types.Gear
	Collection        = types.Collection
	Event             = types.Event
	Organizer         = types.Organizer
	PointOfInterest   = types.PointOfInterest
	Member            = types.Member
	MemberPermissions = types.MemberPermissions

	// Responses
	AuthToken           = types.AuthToken
	Pagination          = types.Pagination
	RouteList           = types.ListResponse[types.Route]
	TripList            = types.ListResponse[types.Trip]
	CollectionList      = types.ListResponse[types.Collection]
	EventList           = types.ListResponse[types.Event]
	PointOfInterestList = types.ListResponse[types.PointOfInterest]
	MemberList          = types.ListResponse[types.Member]
	SyncItemType        = types.SyncItemType
	SyncItem            = types.SyncItem
	SyncResponse        = types.SyncResponse
)

const (
	VisibilityPublic   = types.VisibilityPublic
	VisibilityPrivate  = types.VisibilityPrivate
	VisibilityUnlisted = types.VisibilityUnlisted

	SyncItemRoute      = types.SyncItemRoute
	SyncItemTrip       = types.SyncItemTrip
	SyncItemEvent      = types.SyncItemEvent
	SyncItemCollection = types.SyncItemCollection
)
