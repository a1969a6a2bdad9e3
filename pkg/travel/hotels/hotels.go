// Package hotels provides the hotel price search client. Unlike the other
// products it talks to the provider's gateway host, authenticates with a
// lowercase apikey query parameter and requires an x-user-agent header.
package hotels

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/voyagekit/skytravel/pkg/travel"
)

// GatewayURL is the root of the hotel gateway endpoints.
const GatewayURL = "https://gateway.skyscanner.net/hotels/v1/prices"

// userAgent identifies the caller class to the gateway: not-optimised
// client, business-to-business contract.
const userAgent = "N;B2B"

// Partner is a booking site offering rooms, referenced by offers by id.
type Partner struct {
	ID      string `json:"partner_id,omitempty"`
	Name    string `json:"name,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Offer is one bookable room price with its partner resolved. PartnerID is
// the original linking id; it is cleared when Config.RemoveIDs is set.
type Offer struct {
	PartnerID string   `json:"partner_id,omitempty"`
	Partner   *Partner `json:"partner,omitempty"`
	Price     float64  `json:"price"`
	RoomType  string   `json:"room_type,omitempty"`
	Deeplink  string   `json:"deeplink,omitempty"`
}

// Hotel is one property with its offers attached.
type Hotel struct {
	ID     string   `json:"hotel_id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Stars  string   `json:"stars,omitempty"`
	Images []string `json:"images,omitempty"`
	Offers []Offer  `json:"offers,omitempty"`
}

// SearchResult is the linked output of one price search.
type SearchResult struct {
	CorrelationID string    `json:"correlation_id,omitempty"`
	Hotels        []Hotel   `json:"hotels,omitempty"`
	Partners      []Partner `json:"partners,omitempty"`
}

// Prices searches hotel prices for an entity (a city, region or individual
// property).
type Prices struct {
	// BaseURL is the gateway root the search path is appended to.
	BaseURL string

	client *travel.Client
	params *travel.Params
}

// NewPrices creates a hotel price client backed by c.
func NewPrices(c *travel.Client) *Prices {
	schema := travel.Schema{
		Session: []travel.Field{
			{Name: "checkin_date", Default: time.Now().AddDate(0, 0, 7).Format("2006-01-02")},
			{Name: "checkout_date", Default: time.Now().AddDate(0, 0, 8).Format("2006-01-02")},
			{Name: "adults", Default: "2"},
			{Name: "rooms", Default: "1"},
			{Name: "images", Default: "3"},
			{Name: "image_resolution", Default: "high"},
			{Name: "image_type", Default: "thumbnail"},
			{Name: "boost_official_website"},
			{Name: "sort", Default: "relevance"},
			{Name: "limit", Default: "30"},
			{Name: "offset", Default: "0"},
			{Name: "partners_per_hotel_offer", Default: "3"},
		},
	}
	return &Prices{
		BaseURL: GatewayURL,
		client:  c,
		params:  travel.NewParams(schema, c.Logger()),
	}
}

// Set assigns a request parameter. Unknown names are logged and ignored.
func (p *Prices) Set(name, value string) { p.params.Set(name, value) }

// SetAll assigns every entry of values.
func (p *Prices) SetAll(values map[string]string) { p.params.SetAll(values) }

// Search fetches and links prices for the entity. The gateway names the
// market by its own convention, so the client's country doubles as market.
func (p *Prices) Search(ctx context.Context, entityID string) (*SearchResult, error) {
	cfg := p.client.Config()
	query := url.Values{
		"apikey":   {cfg.APIKey},
		"market":   {cfg.Country},
		"locale":   {cfg.Locale},
		"currency": {cfg.Currency},
	}
	for name, values := range p.params.Query(false) {
		query[name] = values
	}

	header := http.Header{}
	header.Set("x-user-agent", userAgent)
	resp, err := p.client.DoWithHeaders(ctx, http.MethodGet, p.BaseURL+"/search/entity/"+entityID, query, header)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := resp.Decode(&doc); err != nil {
		return nil, err
	}
	return link(&doc, cfg), nil
}
