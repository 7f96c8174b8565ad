package types

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// Optional fields are pointers: nil means the server omitted the key (or sent
// null). Callers apply their own defaults.

// Visibility is the sharing level of a route, trip, collection or event.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

// User represents a RideWithGPS account
type User struct {
	ID          uint64  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Premium     *bool   `json:"premium,omitempty"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

// TrackPoint is a single point of a planned route.
type TrackPoint struct {
	X       *float64 `json:"x,omitempty"` // longitude
	Y       *float64 `json:"y,omitempty"` // latitude
	D       *float64 `json:"d,omitempty"` // meters from start
	E       *float64 `json:"e,omitempty"` // elevation, meters
	Surface *int     `json:"S,omitempty"`
	Highway *int     `json:"R,omitempty"`
}

// CoursePoint is a turn-by-turn cue on a route.
type CoursePoint struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	D *float64 `json:"d,omitempty"`
	T *string  `json:"t,omitempty"` // cue type
	N *string  `json:"n,omitempty"` // cue text
}

// Photo attached to a route, trip or event
type Photo struct {
	ID          uint64  `json:"id"`
	URL         *string `json:"url,omitempty"`
	Highlighted *bool   `json:"highlighted,omitempty"`
	Caption     *string `json:"caption,omitempty"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

// Route represents a planned route. TrackPoints, CoursePoints,
// PointsOfInterest and Photos are only populated by GetRoute.
type Route struct {
	ID                 uint64      `json:"id"`
	Name               *string     `json:"name,omitempty"`
	Description        *string     `json:"description,omitempty"`
	Distance           *float64    `json:"distance,omitempty"`
	ElevationGain      *float64    `json:"elevation_gain,omitempty"`
	ElevationLoss      *float64    `json:"elevation_loss,omitempty"`
	Visibility         *Visibility `json:"visibility,omitempty"`
	UserID             *uint64     `json:"user_id,omitempty"`
	URL                *string     `json:"url,omitempty"`
	HTMLURL            *string     `json:"html_url,omitempty"`
	CreatedAt          *string     `json:"created_at,omitempty"`
	UpdatedAt          *string     `json:"updated_at,omitempty"`
	Locality           *string     `json:"locality,omitempty"`
	AdministrativeArea *string     `json:"administrative_area,omitempty"`
	CountryCode        *string     `json:"country_code,omitempty"`
	TrackType          *string     `json:"track_type,omitempty"`
	HasCoursePoints    *bool       `json:"has_course_points,omitempty"`
	Terrain            *string     `json:"terrain,omitempty"`
	Difficulty         *string     `json:"difficulty,omitempty"`
	FirstLat           *float64    `json:"first_lat,omitempty"`
	FirstLng           *float64    `json:"first_lng,omitempty"`
	LastLat            *float64    `json:"last_lat,omitempty"`
	LastLng            *float64    `json:"last_lng,omitempty"`
	SwLat              *float64    `json:"sw_lat,omitempty"`
	SwLng              *float64    `json:"sw_lng,omitempty"`
	NeLat              *float64    `json:"ne_lat,omitempty"`
	NeLng              *float64    `json:"ne_lng,omitempty"`
	UnpavedPct         *float64    `json:"unpaved_pct,omitempty"`
	Surface            *string     `json:"surface,omitempty"`
	Archived           *bool       `json:"archived,omitempty"`
	ActivityTypes      []string    `json:"activity_types,omitempty"`

	TrackPoints      []TrackPoint      `json:"track_points,omitempty"`
	CoursePoints     []CoursePoint     `json:"course_points,omitempty"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest,omitempty"`
	Photos           []Photo           `json:"photos,omitempty"`
}

// Polyline is the encoded geometry of a route or trip.
type Polyline struct {
	Polyline   string  `json:"polyline"`
	ParentType *string `json:"parent_type,omitempty"`
	ParentID   *uint64 `json:"parent_id,omitempty"`
}

// TripTrackPoint is a recorded point with telemetry.
type TripTrackPoint struct {
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
	D            *float64 `json:"d,omitempty"`
	E            *float64 `json:"e,omitempty"`
	T            *int64   `json:"t,omitempty"` // unix seconds
	S            *float64 `json:"s,omitempty"` // km/h
	Temperature  *float64 `json:"T,omitempty"`
	HeartRate    *float64 `json:"h,omitempty"`
	Cadence      *float64 `json:"c,omitempty"`
	Power        *float64 `json:"p,omitempty"`
	PowerBalance *float64 `json:"pb,omitempty"`
	Lap          *bool    `json:"lap,omitempty"`
	Excluded     *bool    `json:"k,omitempty"`
	Modified     *bool    `json:"m,omitempty"`
}

// Gear used on a trip
type Gear struct {
	ID                uint64  `json:"id"`
	Make              *string `json:"make,omitempty"`
	Model             *string `json:"model,omitempty"`
	Description       *string `json:"description,omitempty"`
	ExcludeFromTotals *bool   `json:"exclude_from_totals,omitempty"`
	CreatedAt         *string `json:"created_at,omitempty"`
}

// Trip represents a recorded ride.
type Trip struct {
	ID                 uint64      `json:"id"`
	Name               *string     `json:"name,omitempty"`
	Description        *string     `json:"description,omitempty"`
	Distance           *float64    `json:"distance,omitempty"`
	ElevationGain      *float64    `json:"elevation_gain,omitempty"`
	ElevationLoss      *float64    `json:"elevation_loss,omitempty"`
	Visibility         *Visibility `json:"visibility,omitempty"`
	UserID             *uint64     `json:"user_id,omitempty"`
	URL                *string     `json:"url,omitempty"`
	WebURL             *string     `json:"web_url,omitempty"`
	DepartedAt         *string     `json:"departed_at,omitempty"`
	TimeZone           *string     `json:"time_zone,omitempty"`
	CreatedAt          *string     `json:"created_at,omitempty"`
	UpdatedAt          *string     `json:"updated_at,omitempty"`
	Duration           *float64    `json:"duration,omitempty"`
	MovingTime         *float64    `json:"moving_time,omitempty"`
	AvgSpeed           *float64    `json:"avg_speed,omitempty"`
	MaxSpeed           *float64    `json:"max_speed,omitempty"`
	AvgCad             *float64    `json:"avg_cad,omitempty"`
	MinCad             *float64    `json:"min_cad,omitempty"`
	MaxCad             *float64    `json:"max_cad,omitempty"`
	AvgHR              *float64    `json:"avg_hr,omitempty"`
	MinHR              *float64    `json:"min_hr,omitempty"`
	MaxHR              *float64    `json:"max_hr,omitempty"`
	AvgWatts           *float64    `json:"avg_watts,omitempty"`
	MinWatts           *float64    `json:"min_watts,omitempty"`
	MaxWatts           *float64    `json:"max_watts,omitempty"`
	Calories           *float64    `json:"calories,omitempty"`
	Device             *string     `json:"device,omitempty"`
	Locality           *string     `json:"locality,omitempty"`
	AdministrativeArea *string     `json:"administrative_area,omitempty"`
	CountryCode        *string     `json:"country_code,omitempty"`
	ActivityType       *string     `json:"activity_type,omitempty"`
	FitSport           *int        `json:"fit_sport,omitempty"`
	FitSubSport        *int        `json:"fit_sub_sport,omitempty"`
	Stationary         *bool       `json:"stationary,omitempty"`
	TrackType          *string     `json:"track_type,omitempty"`
	Terrain            *int        `json:"terrain,omitempty"`
	Difficulty         *int        `json:"difficulty,omitempty"`
	FirstLat           *float64    `json:"first_lat,omitempty"`
	FirstLng           *float64    `json:"first_lng,omitempty"`
	LastLat            *float64    `json:"last_lat,omitempty"`
	LastLng            *float64    `json:"last_lng,omitempty"`
	SwLat              *float64    `json:"sw_lat,omitempty"`
	SwLng              *float64    `json:"sw_lng,omitempty"`
	NeLat              *float64    `json:"ne_lat,omitempty"`
	NeLng              *float64    `json:"ne_lng,omitempty"`

	TrackPoints []TripTrackPoint `json:"track_points,omitempty"`
	Gear        *Gear            `json:"gear,omitempty"`
	Photos      []Photo          `json:"photos,omitempty"`
}

// Collection groups routes and trips. Routes and Trips are embedded only on
// single-collection responses.
type Collection struct {
	ID            uint64      `json:"id"`
	Name          *string     `json:"name,omitempty"`
	Description   *string     `json:"description,omitempty"`
	UserID        *uint64     `json:"user_id,omitempty"`
	Visibility    *Visibility `json:"visibility,omitempty"`
	URL           *string     `json:"url,omitempty"`
	HTMLURL       *string     `json:"html_url,omitempty"`
	Cover         *string     `json:"cover,omitempty"`
	CreatedAt     *string     `json:"created_at,omitempty"`
	UpdatedAt     *string     `json:"updated_at,omitempty"`
	RouteCount    *uint32     `json:"route_count,omitempty"`
	CoverPhotoURL *string     `json:"cover_photo_url,omitempty"`

	Routes []Route `json:"routes,omitempty"`
	Trips  []Trip  `json:"trips,omitempty"`
}

// Organizer of an event
type Organizer struct {
	ID        *uint64 `json:"id,omitempty"`
	Name      *string `json:"name,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// Event represents an organized ride or gathering.
type Event struct {
	ID                   uint64      `json:"id"`
	Name                 *string     `json:"name,omitempty"`
	Description          *string     `json:"description,omitempty"`
	Location             *string     `json:"location,omitempty"`
	Lat                  *float64    `json:"lat,omitempty"`
	Lng                  *float64    `json:"lng,omitempty"`
	Visibility           *Visibility `json:"visibility,omitempty"`
	URL                  *string     `json:"url,omitempty"`
	HTMLURL              *string     `json:"html_url,omitempty"`
	TimeZone             *string     `json:"time_zone,omitempty"`
	StartDate            *string     `json:"start_date,omitempty"`
	StartTime            *string     `json:"start_time,omitempty"`
	EndDate              *string     `json:"end_date,omitempty"`
	EndTime              *string     `json:"end_time,omitempty"`
	AllDay               *bool       `json:"all_day,omitempty"`
	StartsAt             *string     `json:"starts_at,omitempty"`
	EndsAt               *string     `json:"ends_at,omitempty"`
	RegistrationOpensAt  *string     `json:"registration_opens_at,omitempty"`
	RegistrationClosesAt *string     `json:"registration_closes_at,omitempty"`
	UserID               *uint64     `json:"user_id,omitempty"`
	CreatedAt            *string     `json:"created_at,omitempty"`
	UpdatedAt            *string     `json:"updated_at,omitempty"`
	Slug                 *string     `json:"slug,omitempty"`
	LogoURL              *string     `json:"logo_url,omitempty"`
	BannerURL            *string     `json:"banner_url,omitempty"`
	RegistrationRequired *bool       `json:"registration_required,omitempty"`
	MaxAttendees         *uint32     `json:"max_attendees,omitempty"`
	AttendeeCount        *uint32     `json:"attendee_count,omitempty"`

	Organizers []Organizer `json:"organizers,omitempty"`
	Photos     []Photo     `json:"photos,omitempty"`
}

// MemberPermissions lists what an organization member may manage.
type MemberPermissions struct {
	ManageRoutes  *bool `json:"manage_routes,omitempty"`
	ManageEvents  *bool `json:"manage_events,omitempty"`
	ManageMembers *bool `json:"manage_members,omitempty"`
	ViewAnalytics *bool `json:"view_analytics,omitempty"`
}

// Member of an organization account
type Member struct {
	ID             uint64             `json:"id"`
	UserID         *uint64            `json:"user_id,omitempty"`
	OrganizationID *uint64            `json:"organization_id,omitempty"`
	URL            *string            `json:"url,omitempty"`
	Active         *bool              `json:"active,omitempty"`
	Admin          *bool              `json:"admin,omitempty"`
	ManagesRoutes  *bool              `json:"manages_routes,omitempty"`
	ManagesMembers *bool              `json:"manages_members,omitempty"`
	ManagesBilling *bool              `json:"manages_billing,omitempty"`
	ApprovedAt     *string            `json:"approved_at,omitempty"`
	Role           *string            `json:"role,omitempty"`
	Status         *string            `json:"status,omitempty"`
	Name           *string            `json:"name,omitempty"`
	Email          *string            `json:"email,omitempty"`
	JoinedAt       *string            `json:"joined_at,omitempty"`
	CreatedAt      *string            `json:"created_at,omitempty"`
	UpdatedAt      *string            `json:"updated_at,omitempty"`
	Permissions    *MemberPermissions `json:"permissions,omitempty"`
	User           *User              `json:"user,omitempty"`
}
