package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jelmer/ridewithgps-go/client/internal/api"
)

const (
	// HeaderAPIKey carries the application API key on every request.
	HeaderAPIKey = "x-rwgps-api-key"
	// HeaderAuthToken carries the user auth token once one is set.
	HeaderAuthToken = "x-rwgps-auth-token"

	// DefaultBaseURL is the production RideWithGPS endpoint.
	DefaultBaseURL = "https://ridewithgps.com"

	defaultUserAgent = "ridewithgps-go"
	defaultTimeout   = 30 * time.Second
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the RideWithGPS REST API v1. It is safe for concurrent use;
// SetAuthToken may be called while requests are in flight.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	debug     bool

	http   *http.Client
	rest   *resty.Client
	logger zerolog.Logger

	token atomic.Pointer[string]
}

// New constructs a Client for baseURL authenticated with apiKey.
// baseURL must be absolute (scheme and host).
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", baseURL)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key cannot be empty")
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		logger:    log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.installTransports()
	c.rest = newRestClient(c)
	return c, nil
}

// NewWithCredentials constructs a Client and logs in with email and password.
// The returned client already carries the new auth token.
func NewWithCredentials(ctx context.Context, baseURL, apiKey, email, password string, opts ...Option) (*Client, error) {
	c, err := New(baseURL, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	tok, err := c.CreateAuthToken(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.SetAuthToken(tok.AuthToken)
	return c, nil
}

// installTransports wraps the HTTP transport so every request carries the
// API key and, when set, the auth token. The caller's http.Client is copied,
// never mutated.
func (c *Client) installTransports() {
	hc := *c.http
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base, logger: c.logger}
	}
	hc.Transport = &authTransport{base: base, apiKey: c.apiKey, token: &c.token}
	c.http = &hc
}

func newRestClient(c *Client) *resty.Client {
	rc := resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetLogger(restyLogger{l: c.logger}).
		SetCookieJar(nil)
	instrument(rc)
	return rc
}

// authTransport injects the credential headers at send time.
type authTransport struct {
	base   http.RoundTripper
	apiKey string
	token  *atomic.Pointer[string]
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(HeaderAPIKey, t.apiKey)
	if tok := t.token.Load(); tok != nil && *tok != "" {
		cloned.Header.Set(HeaderAuthToken, *tok)
	}
	return t.base.RoundTrip(cloned)
}

// SetAuthToken sets the token sent with every subsequent request. Requests
// already sent are unaffected. An empty token is ignored: an authenticated
// client never reverts to unauthenticated.
func (c *Client) SetAuthToken(token string) {
	if token == "" {
		return
	}
	c.token.Store(&token)
}

// AuthToken returns the current token and whether one is set.
func (c *Client) AuthToken() (string, bool) {
	tok := c.token.Load()
	if tok == nil || *tok == "" {
		return "", false
	}
	return *tok, true
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Auth and users
// --------------------------------------------------------------------

// CreateAuthToken exchanges email and password for an auth token. The token
// is returned, not stored; call SetAuthToken to use it.
func (c *Client) CreateAuthToken(ctx context.Context, email, password string) (*AuthToken, error) {
	return api.CreateAuthToken(ctx, c.rest, email, password)
}

// GetCurrentUser returns the user the auth token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return api.GetCurrentUser(ctx, c.rest)
}

// --------------------------------------------------------------------
// Routes
// --------------------------------------------------------------------

// ListRoutes returns one page of routes. params may be nil.
func (c *Client) ListRoutes(ctx context.Context, params *ListRoutesParams) (*RouteList, error) {
	return api.ListRoutes(ctx, c.rest, params)
}

// GetRoute retrieves a route with track points, cues, POIs and photos.
func (c *Client) GetRoute(ctx context.Context, id uint64) (*Route, error) {
	return api.GetRoute(ctx, c.rest, id)
}

// GetRoutePolyline retrieves the encoded polyline of a route.
func (c *Client) GetRoutePolyline(ctx context.Context, id uint64) (*Polyline, error) {
	return api.GetRoutePolyline(ctx, c.rest, id)
}

// DeleteRoute deletes a route.
func (c *Client) DeleteRoute(ctx context.Context, id uint64) error {
	return api.DeleteRoute(ctx, c.rest, id)
}

// --------------------------------------------------------------------
// Trips
// --------------------------------------------------------------------

// ListTrips returns one page of trips. params may be nil.
func (c *Client) ListTrips(ctx context.Context, params *ListTripsParams) (*TripList, error) {
	return api.ListTrips(ctx, c.rest, params)
}

// GetTrip retrieves a trip with recorded track points.
func (c *Client) GetTrip(ctx context.Context, id uint64) (*Trip, error) {
	return api.GetTrip(ctx, c.rest, id)
}

// GetTripPolyline retrieves the encoded polyline of a trip.
func (c *Client) GetTripPolyline(ctx context.Context, id uint64) (*Polyline, error) {
	return api.GetTripPolyline(ctx, c.rest, id)
}

// DeleteTrip deletes a trip.
func (c *Client) DeleteTrip(ctx context.Context, id uint64) error {
	return api.DeleteTrip(ctx, c.rest, id)
}

// --------------------------------------------------------------------
// Collections
// --------------------------------------------------------------------

func (c *Client) ListCollections(ctx context.Context, params *ListCollectionsParams) (*CollectionList, error) {
	return api.ListCollections(ctx, c.rest, params)
}

func (c *Client) GetCollection(ctx context.Context, id uint64) (*Collection, error) {
	return api.GetCollection(ctx, c.rest, id)
}

// GetPinnedCollection retrieves the authenticated user's pinned collection.
func (c *Client) GetPinnedCollection(ctx context.Context) (*Collection, error) {
	return api.GetPinnedCollection(ctx, c.rest)
}

// --------------------------------------------------------------------
// Events
// --------------------------------------------------------------------

func (c *Client) ListEvents(ctx context.Context, params *ListEventsParams) (*EventList, error) {
	return api.ListEvents(ctx, c.rest, params)
}

func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	return api.CreateEvent(ctx, c.rest, req)
}

func (c *Client) GetEvent(ctx context.Context, id uint64) (*Event, error) {
	return api.GetEvent(ctx, c.rest, id)
}

// UpdateEvent sends only the fields set in req.
func (c *Client) UpdateEvent(ctx context.Context, id uint64, req EventRequest) (*Event, error) {
	return api.UpdateEvent(ctx, c.rest, id, req)
}

func (c *Client) DeleteEvent(ctx context.Context, id uint64) error {
	return api.DeleteEvent(ctx, c.rest, id)
}

// --------------------------------------------------------------------
// Sync
// --------------------------------------------------------------------

// GetChangesSince lists items changed after since. Feed the returned
// ServerDatetime into the next call.
func (c *Client) GetChangesSince(ctx context.Context, since time.Time) (*SyncResponse, error) {
	return api.GetChangesSince(ctx, c.rest, since)
}

// --------------------------------------------------------------------
// Points of interest (organization accounts)
// --------------------------------------------------------------------

func (c *Client) ListPointsOfInterest(ctx context.Context, params *ListPointsOfInterestParams) (*PointOfInterestList, error) {
	return api.ListPointsOfInterest(ctx, c.rest, params)
}

func (c *Client) CreatePointOfInterest(ctx context.Context, req PointOfInterestRequest) (*PointOfInterest, error) {
	return api.CreatePointOfInterest(ctx, c.rest, req)
}

func (c *Client) GetPointOfInterest(ctx context.Context, id uint64) (*PointOfInterest, error) {
	return api.GetPointOfInterest(ctx, c.rest, id)
}

func (c *Client) UpdatePointOfInterest(ctx context.Context, id uint64, req PointOfInterestRequest) (*PointOfInterest, error) {
	return api.UpdatePointOfInterest(ctx, c.rest, id, req)
}

func (c *Client) DeletePointOfInterest(ctx context.Context, id uint64) error {
	return api.DeletePointOfInterest(ctx, c.rest, id)
}

// AssociatePointOfInterestWithRoute attaches a POI to a route.
func (c *Client) AssociatePointOfInterestWithRoute(ctx context.Context, poiID, routeID uint64) error {
	return api.AssociatePointOfInterestWithRoute(ctx, c.rest, poiID, routeID)
}

// DisassociatePointOfInterestFromRoute detaches a POI from a route.
func (c *Client) DisassociatePointOfInterestFromRoute(ctx context.Context, poiID, routeID uint64) error {
	return api.DisassociatePointOfInterestFromRoute(ctx, c.rest, poiID, routeID)
}

// --------------------------------------------------------------------
// Members (organization accounts)
// --------------------------------------------------------------------

func (c *Client) ListMembers(ctx context.Context, params *ListMembersParams) (*MemberList, error) {
	return api.ListMembers(ctx, c.rest, params)
}

func (c *Client) GetMember(ctx context.Context, id uint64) (*Member, error) {
	return api.GetMember(ctx, c.rest, id)
}

// UpdateMember changes role, status or permissions of a member.
func (c *Client) UpdateMember(ctx context.Context, id uint64, req UpdateMemberRequest) (*Member, error) {
	return api.UpdateMember(ctx, c.rest, id, req)
}
