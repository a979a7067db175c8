package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListStopsDecodesMixedIDRepresentations(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stops" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotUser, _, _ = r.BasicAuth()
		// The backend delivers ids sometimes as numbers, sometimes as
		// strings; both must land on the same normalized form.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 10, "name": "A", "latitude": 52.1, "longitude": 21.0},
			{"id": "20", "name": "B", "bearing": 90, "latitude": 52.2, "longitude": 21.1}
		]`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stops, err := client.ListStops(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUser != "cust0" {
		t.Fatalf("basic auth user = %q, want cust0", gotUser)
	}
	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0].ID != 10 || stops[1].ID != 20 {
		t.Fatalf("ids = %d, %d; want 10, 20", stops[0].ID, stops[1].ID)
	}
	if stops[1].Bearing != 90 {
		t.Fatalf("bearing = %v, want 90", stops[1].Bearing)
	}
}

func TestListOrdersDecodesNestedRoute(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _, _ = r.BasicAuth()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": 1, "status": "ASSIGNED",
			"fromStand": "10", "toStand": 30,
			"maxWait": 15, "maxLoss": 50, "shared": true, "inPool": true, "eta": -1,
			"receivedTime": "2023-05-01T10:15:30.123",
			"route": {
				"id": 900, "status": "STARTED",
				"cab": {"id": 7, "location": 10, "name": "", "status": "ASSIGNED"},
				"legs": [
					{"id": 5, "fromStand": 10, "toStand": "20", "distance": 5, "place": 0, "status": "STARTED"},
					{"id": 6, "fromStand": 20, "toStand": 30, "distance": 0, "place": 1, "status": "ASSIGNED"}
				]
			}
		}]`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := client.ListOrders(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUser != "cust3" {
		t.Fatalf("basic auth user = %q, want cust3", gotUser)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	o := orders[0]
	if o.FromStand != 10 || o.ToStand != 30 {
		t.Fatalf("stands = %d/%d, want 10/30", o.FromStand, o.ToStand)
	}
	if o.Route == nil || len(o.Route.Legs) != 2 {
		t.Fatalf("route not decoded: %+v", o.Route)
	}
	if o.Route.Legs[0].ToStand != 20 {
		t.Fatalf("leg toStand = %d, want 20", o.Route.Legs[0].ToStand)
	}
	if o.Route.Cab.ID != 7 {
		t.Fatalf("cab id = %d, want 7", o.Route.Cab.ID)
	}
}

func TestListOrdersSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.ListOrders(context.Background(), 1)
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 status error", err)
	}
}

func TestNewClientRejectsEmptyURL(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestFlexIDRejectsGarbage(t *testing.T) {
	var f flexID
	if err := json.Unmarshal([]byte(`"not-a-number"`), &f); err == nil {
		t.Fatal("expected parse error")
	}
}
