package flights

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const livePricingPath = "/pricing/v1.0/"

const statusUpdatesPending = "UpdatesPending"

// Agent is a booking agent offering a price for an itinerary.
type Agent struct {
	ID                 int    `json:"id,omitempty"`
	Name               string `json:"name,omitempty"`
	ImageURL           string `json:"image_url,omitempty"`
	Status             string `json:"status,omitempty"`
	OptimisedForMobile bool   `json:"optimised_for_mobile,omitempty"`
	Type               string `json:"type,omitempty"`
}

// PricingOption is one bookable price for an itinerary. A single-agent
// option collapses to the scalar Agent field unless the client keeps lists.
type PricingOption struct {
	AgentIDs    []int   `json:"agent_ids,omitempty"`
	Agent       *Agent  `json:"agent,omitempty"`
	Agents      []Agent `json:"agents,omitempty"`
	QuoteAge    int     `json:"quote_age,omitempty"`
	Price       float64 `json:"price"`
	DeeplinkURL string  `json:"deeplink_url,omitempty"`
}

// FlightNumber is one flight of a leg with its operating carrier resolved.
// Code is the display form, carrier code plus number, such as "BA117".
type FlightNumber struct {
	Number    string   `json:"number,omitempty"`
	CarrierID int      `json:"carrier_id,omitempty"`
	Carrier   *Carrier `json:"carrier,omitempty"`
	Code      string   `json:"code,omitempty"`
}

// ItineraryLeg is one direction of a live itinerary with stations, carriers
// and flight numbers resolved.
type ItineraryLeg struct {
	ID             string         `json:"id,omitempty"`
	SegmentIDs     []int          `json:"segment_ids,omitempty"`
	OriginID       int            `json:"origin_id,omitempty"`
	DestinationID  int            `json:"destination_id,omitempty"`
	Origin         *Place         `json:"origin,omitempty"`
	Destination    *Place         `json:"destination,omitempty"`
	DepartsAt      string         `json:"departs_at,omitempty"`
	ArrivesAt      string         `json:"arrives_at,omitempty"`
	Duration       int            `json:"duration,omitempty"`
	JourneyMode    string         `json:"journey_mode,omitempty"`
	StopIDs        []int          `json:"stop_ids,omitempty"`
	CarrierIDs     []int          `json:"carrier_ids,omitempty"`
	Carrier        *Carrier       `json:"carrier,omitempty"`
	Carriers       []Carrier      `json:"carriers,omitempty"`
	Directionality string         `json:"directionality,omitempty"`
	FlightNumbers  []FlightNumber `json:"flight_numbers,omitempty"`
}

// Itinerary is one bookable journey with its legs and prices attached.
type Itinerary struct {
	OutboundLegID  string          `json:"outbound_leg_id,omitempty"`
	InboundLegID   string          `json:"inbound_leg_id,omitempty"`
	OutboundLeg    *ItineraryLeg   `json:"outbound_leg,omitempty"`
	InboundLeg     *ItineraryLeg   `json:"inbound_leg,omitempty"`
	PricingOptions []PricingOption `json:"pricing_options,omitempty"`
}

// LiveResult is the linked output of one live-pricing poll.
type LiveResult struct {
	SessionKey  string      `json:"session_key,omitempty"`
	Status      string      `json:"status,omitempty"`
	Itineraries []Itinerary `json:"itineraries,omitempty"`
	Places      []Place     `json:"places,omitempty"`
	Carriers    []Carrier   `json:"carriers,omitempty"`
	Agents      []Agent     `json:"agents,omitempty"`
}

// LivePricing runs live flight searches: a POST creates a pricing session
// identified by the Location header, then GET polls against the session URL
// return progressively completed results.
type LivePricing struct {
	// BaseURL is the API root the endpoint paths are appended to.
	BaseURL string

	client    *travel.Client
	params    *travel.Params
	sessionID string
}

// NewLivePricing creates a live-pricing client backed by c.
func NewLivePricing(c *travel.Client) *LivePricing {
	schema := travel.Schema{
		Session: []travel.Field{
			{Name: "adults", Default: "1"},
			{Name: "cabinclass", Default: "Economy"},
			{Name: "children", Default: "0"},
			{Name: "infants", Default: "0"},
			{Name: "originplace", Default: "LHR"},
			{Name: "destinationplace", Default: "IST"},
			{Name: "outbounddate", Default: time.Now().AddDate(0, 0, 7).Format("2006-01-02")},
			{Name: "inbounddate"},
			{Name: "locationschema", Default: "iata"},
			{Name: "grouppricing", Default: "false"},
		},
		Polling: []travel.Field{
			{Name: "stops", Default: "0"},
			{Name: "sorttype", Default: "price"},
			{Name: "sortorder", Default: "asc"},
			{Name: "duration"},
			{Name: "includecarriers"},
			{Name: "excludecarriers"},
			{Name: "originairports"},
			{Name: "destinationairports"},
			{Name: "pageindex"},
			{Name: "pagesize"},
		},
	}
	return &LivePricing{
		BaseURL: travel.BaseURL,
		client:  c,
		params:  travel.NewParams(schema, c.Logger()),
	}
}

// Set assigns a request parameter. Unknown names are logged and ignored.
func (l *LivePricing) Set(name, value string) { l.params.Set(name, value) }

// SetAll assigns every entry of values.
func (l *LivePricing) SetAll(values map[string]string) { l.params.SetAll(values) }

// SessionID returns the current session id, or "" before Session succeeds.
func (l *LivePricing) SessionID() string { return l.sessionID }

// Session creates a pricing session. The search parameters plus the client's
// localisation triple are sent as a form body; the session id is taken from
// the Location header of the provider's answer.
func (l *LivePricing) Session(ctx context.Context) (string, error) {
	body := l.client.BaseQuery()
	for name, values := range l.params.Query(false) {
		body[name] = values
	}
	id, err := l.client.CreateSession(ctx, http.MethodPost, l.BaseURL+livePricingPath, body)
	if err != nil {
		return "", err
	}
	l.sessionID = id
	return id, nil
}

// Fetch polls the session until the provider reports results complete,
// creating the session first when none exists. A 304 answer means nothing
// changed since the previous poll and yields an empty result. When
// cheapestOnly is set each itinerary keeps only its lowest-priced option.
func (l *LivePricing) Fetch(ctx context.Context, cheapestOnly bool) (*LiveResult, error) {
	if l.sessionID == "" {
		if _, err := l.Session(ctx); err != nil {
			return nil, err
		}
	}

	cfg := l.client.Config()
	pollURL := l.BaseURL + livePricingPath + l.sessionID
	query := url.Values{"apiKey": {cfg.APIKey}}
	for name, values := range l.params.Query(true) {
		query[name] = values
	}

	for attempt := 0; attempt < cfg.SessionAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(cfg.PollDelay):
			}
		}

		resp, err := l.client.Do(ctx, http.MethodGet, pollURL, query)
		if err != nil {
			return nil, err
		}
		if resp.Status == http.StatusNotModified {
			return &LiveResult{SessionKey: l.sessionID}, nil
		}

		var doc liveDocument
		if err := resp.Decode(&doc); err != nil {
			return nil, err
		}
		if travel.PollDone(resp.Status) && doc.Status != statusUpdatesPending {
			return linkLive(&doc, cfg, cheapestOnly), nil
		}
		l.client.Logger().Debug("results pending", "status", resp.Status, "attempt", attempt+1)
	}
	return nil, fmt.Errorf("%w after %d polls", travel.ErrSessionTimeout, cfg.SessionAttempts)
}
