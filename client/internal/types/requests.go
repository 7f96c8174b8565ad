package types

// ------------------------------
// Request Types
// ------------------------------

// CreateAuthTokenRequest holds login credentials
type CreateAuthTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EventRequest holds the writable fields of an event for create and update.
// Nil fields are not sent.
type EventRequest struct {
	Name                 *string     `json:"name,omitempty"`
	Description          *string     `json:"description,omitempty"`
	Location             *string     `json:"location,omitempty"`
	Visibility           *Visibility `json:"visibility,omitempty"`
	StartsAt             *string     `json:"starts_at,omitempty"`
	EndsAt               *string     `json:"ends_at,omitempty"`
	RegistrationOpensAt  *string     `json:"registration_opens_at,omitempty"`
	RegistrationClosesAt *string     `json:"registration_closes_at,omitempty"`
	RegistrationRequired *bool       `json:"registration_required,omitempty"`
	MaxAttendees         *uint32     `json:"max_attendees,omitempty"`
}

// PointOfInterestRequest holds the writable fields of a point of interest
type PointOfInterestRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	PoiType     *string  `json:"poi_type,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
}

// UpdateMemberRequest changes a member's role, status or permissions.
type UpdateMemberRequest struct {
	Role        *string            `json:"role,omitempty"`
	Status      *string            `json:"status,omitempty"`
	Permissions *MemberPermissions `json:"permissions,omitempty"`
}

// ------------------------------
// List Parameters
// ------------------------------

// ListRoutesParams filters the route listing. Only non-nil fields are sent.
type ListRoutesParams struct {
	Name             *string
	Visibility       *Visibility
	MinDistance      *float64 // meters
	MaxDistance      *float64
	MinElevationGain *float64
	MaxElevationGain *float64
	Page             *uint32
	PageSize         *uint32
}

// ListTripsParams filters the trip listing; same filters as routes.
type ListTripsParams struct {
	Name             *string
	Visibility       *Visibility
	MinDistance      *float64
	MaxDistance      *float64
	MinElevationGain *float64
	MaxElevationGain *float64
	Page             *uint32
	PageSize         *uint32
}

// ListCollectionsParams filters the collection listing
type ListCollectionsParams struct {
	Name     *string
	Page     *uint32
	PageSize *uint32
}

// ListEventsParams filters the event listing
type ListEventsParams struct {
	Name       *string
	Visibility *Visibility
	Page       *uint32
	PageSize   *uint32
}

// ListPointsOfInterestParams filters the POI listing
type ListPointsOfInterestParams struct {
	Name     *string
	PoiType  *string
	Page     *uint32
	PageSize *uint32
}

// ListMembersParams filters the member listing
type ListMembersParams struct {
	Name     *string
	Role     *string
	Status   *string
	Page     *uint32
	PageSize *uint32
}
