package types

import "encoding/json"

// PointOfInterest is an organization-owned place that can be attached to
// routes.
type PointOfInterest struct {
	ID             uint64   `json:"id"`
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	Type           *string  `json:"type,omitempty"`
	TypeID         *uint64  `json:"type_id,omitempty"`
	TypeName       *string  `json:"type_name,omitempty"`
	Icon           *string  `json:"icon,omitempty"`
	UserID         *uint64  `json:"user_id,omitempty"`
	OrganizationID *uint64  `json:"organization_id,omitempty"`
	URL            *string  `json:"url,omitempty"`
	CreatedAt      *string  `json:"created_at,omitempty"`
	UpdatedAt      *string  `json:"updated_at,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Website        *string  `json:"website,omitempty"`
	TagNames       []string `json:"tag_names,omitempty"`
}

// UnmarshalJSON accepts the long-form keys (latitude, longitude, poi_type)
// some endpoints return in place of lat, lng and type.
func (p *PointOfInterest) UnmarshalJSON(data []byte) error {
	type plain PointOfInterest
	var aux struct {
		plain
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		PoiType   *string  `json:"poi_type"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = PointOfInterest(aux.plain)
	if p.Lat == nil {
		p.Lat = aux.Latitude
	}
	if p.Lng == nil {
		p.Lng = aux.Longitude
	}
	if p.Type == nil {
		p.Type = aux.PoiType
	}
	return nil
}
