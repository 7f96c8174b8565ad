package types

import (
	"net/url"
	"strconv"
)

// Values encodes the set filters. Unset filters produce no key at all.
func (p *ListRoutesParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setVisibility(v, p.Visibility)
	setFloat(v, "min_distance", p.MinDistance)
	setFloat(v, "max_distance", p.MaxDistance)
	setFloat(v, "min_elevation_gain", p.MinElevationGain)
	setFloat(v, "max_elevation_gain", p.MaxElevationGain)
	setPage(v, p.Page, p.PageSize)
	return v
}

func (p *ListTripsParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setVisibility(v, p.Visibility)
	setFloat(v, "min_distance", p.MinDistance)
	setFloat(v, "max_distance", p.MaxDistance)
	setFloat(v, "min_elevation_gain", p.MinElevationGain)
	setFloat(v, "max_elevation_gain", p.MaxElevationGain)
	setPage(v, p.Page, p.PageSize)
	return v
}

func (p *ListCollectionsParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setPage(v, p.Page, p.PageSize)
	return v
}

func (p *ListEventsParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setVisibility(v, p.Visibility)
	setPage(v, p.Page, p.PageSize)
	return v
}

func (p *ListPointsOfInterestParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setString(v, "poi_type", p.PoiType)
	setPage(v, p.Page, p.PageSize)
	return v
}

func (p *ListMembersParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	setString(v, "name", p.Name)
	setString(v, "role", p.Role)
	setString(v, "status", p.Status)
	setPage(v, p.Page, p.PageSize)
	return v
}

func setString(v url.Values, key string, s *string) {
	if s != nil {
		v.Set(key, *s)
	}
}

func setVisibility(v url.Values, vis *Visibility) {
	if vis != nil {
		v.Set("visibility", string(*vis))
	}
}

// setFloat uses the shortest representation, so 10000 stays "10000".
func setFloat(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

func setPage(v url.Values, page, size *uint32) {
	if page != nil {
		v.Set("page", strconv.FormatUint(uint64(*page), 10))
	}
	if size != nil {
		v.Set("page_size", strconv.FormatUint(uint64(*size), 10))
	}
}
