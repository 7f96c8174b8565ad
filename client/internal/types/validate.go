package types

import (
	"errors"
	"fmt"
)

// Validation for decoded responses. Every resource the API returns carries a
// positive id, so a zero ID means the key was absent from the body.

var errMissingID = errors.New(`missing "id"`)

func (u *User) Validate() error {
	if u.ID == 0 {
		return errMissingID
	}
	return nil
}

func (r *Route) Validate() error {
	if r.ID == 0 {
		return errMissingID
	}
	return nil
}

func (t *Trip) Validate() error {
	if t.ID == 0 {
		return errMissingID
	}
	return nil
}

func (c *Collection) Validate() error {
	if c.ID == 0 {
		return errMissingID
	}
	return nil
}

func (e *Event) Validate() error {
	if e.ID == 0 {
		return errMissingID
	}
	return nil
}

func (p *PointOfInterest) Validate() error {
	if p.ID == 0 {
		return errMissingID
	}
	return nil
}

func (m *Member) Validate() error {
	if m.ID == 0 {
		return errMissingID
	}
	return nil
}

// Validate rejects a login response without a usable token.
func (a *AuthToken) Validate() error {
	if a.AuthToken == "" {
		return errors.New(`missing "auth_token"`)
	}
	if a.User != nil {
		return a.User.Validate()
	}
	return nil
}

// Validate checks every result that knows how to validate itself.
func (l *ListResponse[T]) Validate() error {
	for i := range l.Results {
		if v, ok := any(&l.Results[i]).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("results[%d]: %w", i, err)
			}
		}
	}
	return nil
}

func (s *SyncResponse) Validate() error {
	for i, it := range s.Items {
		if it.ID == 0 {
			return fmt.Errorf("items[%d]: %w", i, errMissingID)
		}
		if it.ItemType == "" {
			return fmt.Errorf(`items[%d]: missing "item_type"`, i)
		}
	}
	return nil
}
