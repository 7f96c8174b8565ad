package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

func TestPointOfInterest_CRUD(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusCreated, `{"point_of_interest":{"id":3,"name":"Cafe","latitude":53.3,"longitude":-6.2,"poi_type":"food"}}`)

	poi, err := CreatePointOfInterest(context.Background(), rc, types.PointOfInterestRequest{Name: ptr("Cafe"), Latitude: ptr(53.3), Longitude: ptr(-6.2)})
	if err != nil {
		t.Fatalf("CreatePointOfInterest error: %v", err)
	}
	if *poi.Lat != 53.3 || *poi.Lng != -6.2 || *poi.Type != "food" {
		t.Fatalf("aliases not applied: %+v", poi)
	}
	if got.Method != http.MethodPost || got.Path != "/api/v1/points_of_interest.json" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}

	rc, got = newServer(t, http.StatusOK, `{"point_of_interest":{"id":3,"phone":"123"}}`)
	if _, err := UpdatePointOfInterest(context.Background(), rc, 3, types.PointOfInterestRequest{Phone: ptr("123")}); err != nil {
		t.Fatalf("UpdatePointOfInterest error: %v", err)
	}
	if got.Method != http.MethodPut || got.Path != "/api/v1/points_of_interest/3.json" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}

	rc, _ = newServer(t, http.StatusOK, `{"point_of_interest":{"id":3}}`)
	if p, err := GetPointOfInterest(context.Background(), rc, 3); err != nil || p.ID != 3 {
		t.Fatalf("unexpected result %+v, %v", p, err)
	}

	rc, got = newServer(t, http.StatusNoContent, "")
	if err := DeletePointOfInterest(context.Background(), rc, 3); err != nil {
		t.Fatalf("DeletePointOfInterest error: %v", err)
	}
	if got.Method != http.MethodDelete {
		t.Fatalf("unexpected method %s", got.Method)
	}
}

func TestAssociatePointOfInterest_AcceptsAnySuccess(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		rc, got := newServer(t, status, "")
		if err := AssociatePointOfInterestWithRoute(context.Background(), rc, 3, 12); err != nil {
			t.Fatalf("status %d: %v", status, err)
		}
		if got.Method != http.MethodPost || got.Path != "/api/v1/points_of_interest/3/routes/12.json" {
			t.Fatalf("unexpected request %s %s", got.Method, got.Path)
		}
	}
}

func TestDisassociatePointOfInterest(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusNoContent, "")

	if err := DisassociatePointOfInterestFromRoute(context.Background(), rc, 3, 12); err != nil {
		t.Fatalf("DisassociatePointOfInterestFromRoute error: %v", err)
	}
	if got.Method != http.MethodDelete || got.Path != "/api/v1/points_of_interest/3/routes/12.json" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
}

func TestListPointsOfInterest_Query(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusOK, `{"results":[{"id":1,"lat":1,"lng":2}]}`)

	res, err := ListPointsOfInterest(context.Background(), rc, &types.ListPointsOfInterestParams{PoiType: ptr("water")})
	if err != nil || len(res.Results) != 1 {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}
	if got.Query != "poi_type=water" {
		t.Fatalf("unexpected query: %q", got.Query)
	}
}
