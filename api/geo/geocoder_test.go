package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNominatimGeocoder_Forward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Eiffel Tower" {
			t.Fatalf("unexpected query %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Fatal("expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"48.8584","lon":"2.2945"},{"lat":"48.0","lon":"2.0"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "fkmap-test")
	coords, err := g.Forward(context.Background(), "Eiffel Tower")
	if err != nil {
		t.Fatalf("forward geocode failed: %v", err)
	}

	if len(coords) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(coords))
	}
	if coords[0].Latitude != 48.8584 || coords[0].Longitude != 2.2945 {
		t.Fatalf("unexpected first candidate: %+v", coords[0])
	}
}

func TestNominatimGeocoder_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "fkmap-test")
	coords, err := g.Forward(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 0 {
		t.Fatalf("expected no candidates, got %v", coords)
	}
}

func TestNominatimGeocoder_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "fkmap-test")
	if _, err := g.Forward(context.Background(), "Paris"); err == nil {
		t.Fatal("expected an error for a failing service")
	}
}
