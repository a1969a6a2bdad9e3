package places

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/voyagekit/skytravel/pkg/travel"
)

func newService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := travel.NewClient(travel.Config{APIKey: "key"}, travel.WithLogger(log.New(io.Discard)))
	s := NewService(client)
	s.BaseURL = server.URL
	return s
}

func TestAutosuggest(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"Places": [
			{"PlaceId": "LOND-sky", "PlaceName": "London", "CountryId": "UK-sky", "CityId": "LOND", "CountryName": "United Kingdom"},
			{"PlaceId": "LHR-sky", "PlaceName": "London Heathrow", "CountryId": "UK-sky", "CityId": "LOND", "CountryName": "United Kingdom"}
		]}`))
	})

	got, err := s.Autosuggest(context.Background(), "lond")
	if err != nil {
		t.Fatalf("Autosuggest failed: %v", err)
	}

	if gotPath != "/autosuggest/v1.0/GB/GBP/en-GB" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotQuery.Get("query") != "lond" || gotQuery.Get("apiKey") != "key" {
		t.Errorf("unexpected query %v", gotQuery)
	}
	if len(got) != 2 || got[0].PlaceID != "LOND-sky" || got[0].CountryName != "United Kingdom" {
		t.Errorf("unexpected suggestions %+v", got)
	}
}

func TestInformation(t *testing.T) {
	var gotQuery url.Values
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"Places": [{"PlaceId": "LHR-sky", "PlaceName": "London Heathrow"}]}`))
	})

	got, err := s.Information(context.Background(), "LHR-sky")
	if err != nil {
		t.Fatalf("Information failed: %v", err)
	}
	if gotQuery.Get("id") != "LHR-sky" {
		t.Errorf("detail lookups use the id parameter, got %v", gotQuery)
	}
	if len(got) != 1 || got[0].PlaceName != "London Heathrow" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestCatalogue(t *testing.T) {
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Continents": [
			{"Id": 1, "Name": "Europe", "Countries": [
				{"Id": "UK", "Name": "United Kingdom", "Cities": [{"Id": "LOND", "Name": "London", "IataCode": "LON"}]}
			]}
		]}`))
	})

	got, err := s.Catalogue(context.Background())
	if err != nil {
		t.Fatalf("Catalogue failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Europe" {
		t.Fatalf("unexpected continents %+v", got)
	}
	if got[0].Countries[0].Cities[0].IataCode != "LON" {
		t.Error("city hierarchy must decode")
	}
}

func TestCatalogue_RestrictedKey(t *testing.T) {
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := s.Catalogue(context.Background())
	if !errors.Is(err, travel.ErrRestrictedAccess) {
		t.Fatalf("an empty catalogue means a non-whitelisted key, got %v", err)
	}
}

func TestHotels(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"results": [
			{"individual_id": "27544008", "place_name": "The Savoy", "place_type": "H", "geo_type": "Hotel"}
		]}`))
	})

	got, err := s.Hotels(context.Background(), "savoy london")
	if err != nil {
		t.Fatalf("Hotels failed: %v", err)
	}
	if gotPath != "/hotels/autosuggest/v2/GB/GBP/en-GB/savoy%20london" {
		t.Errorf("query must travel as an escaped path segment, got %q", gotPath)
	}
	if gotQuery.Get("apikey") != "key" {
		t.Error("hotel autosuggest uses the lowercase apikey parameter")
	}
	if len(got) != 1 || got[0].ID != "27544008" {
		t.Errorf("unexpected result %+v", got)
	}
}
