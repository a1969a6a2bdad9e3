// Package places provides geo lookups: the place autosuggest used to turn
// free text into place ids, detail lookups by id, the hotel autosuggest,
// and the full geo catalogue available to whitelisted keys only.
package places

import (
	"context"
	"net/url"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const (
	autosuggestPath       = "/autosuggest/v1.0/"
	geoCataloguePath      = "/geo/v1.0"
	hotelsAutosuggestPath = "/hotels/autosuggest/v2/"
)

// Suggestion is one autosuggest match. PlaceID is the provider's routable
// place code, the value the flight endpoints accept as origin or
// destination.
type Suggestion struct {
	PlaceID     string `json:"place_id,omitempty"`
	PlaceName   string `json:"place_name,omitempty"`
	CountryID   string `json:"country_id,omitempty"`
	RegionID    string `json:"region_id,omitempty"`
	CityID      string `json:"city_id,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

// HotelSuggestion is one hotel autosuggest match.
type HotelSuggestion struct {
	ID        string `json:"individual_id,omitempty"`
	ParentID  string `json:"parent_place_id,omitempty"`
	PlaceName string `json:"place_name,omitempty"`
	PlaceType string `json:"place_type,omitempty"`
	GeoType   string `json:"geo_type,omitempty"`
}

// Country is one entry of the geo catalogue, with its cities inlined.
type Country struct {
	ID     string `json:"Id"`
	Name   string `json:"Name"`
	Cities []City `json:"Cities"`
}

// City is one city of the geo catalogue.
type City struct {
	ID       string `json:"Id"`
	Name     string `json:"Name"`
	IataCode string `json:"IataCode"`
}

// Continent is one entry of the geo catalogue.
type Continent struct {
	ID        int       `json:"Id"`
	Name      string    `json:"Name"`
	Countries []Country `json:"Countries"`
}

// Service queries the geo endpoints.
type Service struct {
	// BaseURL is the API root the endpoint paths are appended to.
	BaseURL string

	client *travel.Client
}

// NewService creates a places client backed by c.
func NewService(c *travel.Client) *Service {
	return &Service{BaseURL: travel.BaseURL, client: c}
}

type suggestDocument struct {
	Places []struct {
		PlaceID     string `json:"PlaceId"`
		PlaceName   string `json:"PlaceName"`
		CountryID   string `json:"CountryId"`
		RegionID    string `json:"RegionId"`
		CityID      string `json:"CityId"`
		CountryName string `json:"CountryName"`
	} `json:"Places"`
}

func (s *Service) suggest(ctx context.Context, param, value string) ([]Suggestion, error) {
	cfg := s.client.Config()
	rawURL := s.BaseURL + autosuggestPath + cfg.Country + "/" + cfg.Currency + "/" + cfg.Locale
	query := url.Values{
		"apiKey": {cfg.APIKey},
		param:    {value},
	}

	var doc suggestDocument
	if err := s.client.GetJSON(ctx, rawURL, query, &doc); err != nil {
		return nil, err
	}
	out := make([]Suggestion, 0, len(doc.Places))
	for _, p := range doc.Places {
		out = append(out, Suggestion(p))
	}
	return out, nil
}

// Autosuggest finds places matching a free-text query.
func (s *Service) Autosuggest(ctx context.Context, query string) ([]Suggestion, error) {
	return s.suggest(ctx, "query", query)
}

// Information looks up the details of a known place id.
func (s *Service) Information(ctx context.Context, id string) ([]Suggestion, error) {
	return s.suggest(ctx, "id", id)
}

// Catalogue fetches the full geo hierarchy. The endpoint is limited to
// whitelisted keys; the provider answers other keys with an empty document,
// reported here as travel.ErrRestrictedAccess.
func (s *Service) Catalogue(ctx context.Context) ([]Continent, error) {
	cfg := s.client.Config()
	query := url.Values{
		"apiKey":       {cfg.APIKey},
		"languageid":   {cfg.Locale},
		"subscription": {"basic"},
	}

	var doc struct {
		Continents []Continent `json:"Continents"`
	}
	if err := s.client.GetJSON(ctx, s.BaseURL+geoCataloguePath, query, &doc); err != nil {
		return nil, err
	}
	if len(doc.Continents) == 0 {
		return nil, travel.ErrRestrictedAccess
	}
	return doc.Continents, nil
}

// Hotels finds hotel entities matching a free-text query. The query is a
// path segment on this endpoint, and authentication uses the lowercase
// apikey parameter.
func (s *Service) Hotels(ctx context.Context, query string) ([]HotelSuggestion, error) {
	cfg := s.client.Config()
	rawURL := s.BaseURL + hotelsAutosuggestPath +
		cfg.Country + "/" + cfg.Currency + "/" + cfg.Locale + "/" + url.PathEscape(query)

	var doc struct {
		Results []HotelSuggestion `json:"results"`
	}
	if err := s.client.GetJSON(ctx, rawURL, url.Values{"apikey": {cfg.APIKey}}, &doc); err != nil {
		return nil, err
	}
	return doc.Results, nil
}
