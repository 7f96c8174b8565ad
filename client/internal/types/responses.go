package types

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
)

// ------------------------------
// Response Types
// ------------------------------

// AuthToken is returned by the login endpoint.
type AuthToken struct {
	AuthToken string  `json:"auth_token"`
	UserID    *uint64 `json:"user_id,omitempty"`
	User      *User   `json:"user,omitempty"`
}

// Pagination is the paging metadata returned alongside list results.
type Pagination struct {
	RecordCount *uint64 `json:"record_count,omitempty"`
	PageCount   *uint64 `json:"page_count,omitempty"`
	PageSize    *uint64 `json:"page_size,omitempty"`
	NextPageURL *string `json:"next_page_url,omitempty"`
}

// ListResponse wraps list endpoint responses. Pagination keys sit next to
// results; any "meta" object is passed through untouched.
type ListResponse[T any] struct {
	Results []T `json:"results"`
	Pagination
	Meta json.RawMessage `json:"meta,omitempty"`
}

// SyncItemType names the resource kind of a sync item.
type SyncItemType string

const (
	SyncItemRoute      SyncItemType = "route"
	SyncItemTrip       SyncItemType = "trip"
	SyncItemEvent      SyncItemType = "event"
	SyncItemCollection SyncItemType = "collection"
)

// SyncItem is one resource changed since the requested time.
type SyncItem struct {
	ID        uint64          `json:"id"`
	ItemType  SyncItemType    `json:"item_type"`
	UpdatedAt strfmt.DateTime `json:"updated_at"`
	Deleted   *bool           `json:"deleted,omitempty"`
}

// SyncResponse lists changed items. ServerDatetime should be passed as the
// since value of the next sync.
type SyncResponse struct {
	Items          []SyncItem      `json:"items"`
	ServerDatetime strfmt.DateTime `json:"server_datetime"`
}
