package flights

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const liveBody = `{
	"SessionKey": "abc123",
	"Status": "UpdatesComplete",
	"Itineraries": [
		{
			"OutboundLegId": "leg-out-1",
			"InboundLegId": "leg-in-1",
			"PricingOptions": [
				{"Agents": [10], "QuoteAgeInMinutes": 3, "Price": 420.5, "DeeplinkUrl": "http://example.test/book/1"},
				{"Agents": [10, 11], "QuoteAgeInMinutes": 5, "Price": 399, "DeeplinkUrl": "http://example.test/book/2"}
			]
		},
		{
			"OutboundLegId": "leg-missing",
			"PricingOptions": [{"Agents": [99], "Price": 100}]
		}
	],
	"Legs": [
		{
			"Id": "leg-out-1",
			"SegmentIds": [1, 2],
			"OriginStation": 100,
			"DestinationStation": 200,
			"Departure": "2026-09-04T08:00:00",
			"Arrival": "2026-09-04T12:30:00",
			"Duration": 270,
			"JourneyMode": "Flight",
			"Stops": [150],
			"Carriers": [50],
			"Directionality": "Outbound",
			"FlightNumbers": [{"FlightNumber": "117", "CarrierId": 50}]
		},
		{
			"Id": "leg-in-1",
			"OriginStation": 200,
			"DestinationStation": 100,
			"Carriers": [50, 51],
			"Directionality": "Inbound",
			"FlightNumbers": [{"FlightNumber": "8", "CarrierId": 77}]
		}
	],
	"Carriers": [
		{"Id": 50, "Code": "BA", "Name": "British Airways", "ImageUrl": "http://example.test/ba.png", "DisplayCode": "BA"},
		{"Id": 51, "Code": "IB", "Name": "Iberia", "DisplayCode": "IB"}
	],
	"Agents": [
		{"Id": 10, "Name": "Expedia", "Status": "UpdatesComplete", "OptimisedForMobile": true, "Type": "TravelAgent"},
		{"Id": 11, "Name": "Opodo", "Type": "TravelAgent"}
	],
	"Places": [
		{"Id": 100, "Code": "LHR", "Type": "Airport", "Name": "Heathrow"},
		{"Id": 200, "Code": "IST", "Type": "Airport", "Name": "Istanbul"}
	]
}`

// liveServer answers the create call with a Location header and serves poll
// bodies from a queue, repeating the last entry once the queue drains.
func liveServer(t *testing.T, polls ...func(w http.ResponseWriter)) (*httptest.Server, *int) {
	t.Helper()
	var pollCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Location", "http://example.test/pricing/v1.0/abc123?apiKey=x")
			w.WriteHeader(http.StatusCreated)
			return
		}
		i := pollCount
		if i >= len(polls) {
			i = len(polls) - 1
		}
		pollCount++
		polls[i](w)
	}))
	t.Cleanup(server.Close)
	return server, &pollCount
}

func newLive(t *testing.T, cfg travel.Config, server *httptest.Server) *LivePricing {
	t.Helper()
	cfg.PollDelay = 1
	client := travel.NewClient(cfg, travel.WithLogger(log.New(io.Discard)))
	l := NewLivePricing(client)
	l.BaseURL = server.URL
	return l
}

func completePoll(w http.ResponseWriter) { w.Write([]byte(liveBody)) }

func TestLivePricing_Session(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		w.Header().Set("Location", "http://example.test/pricing/v1.0/sess-42?apiKey=x")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	l := newLive(t, testConfig(), server)
	id, err := l.Session(context.Background())
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if id != "sess-42" || l.SessionID() != "sess-42" {
		t.Errorf("expected session id sess-42, got %q", id)
	}

	if got := gotForm["apiKey"]; len(got) != 1 || got[0] != "0123456789abcdefextra" {
		t.Errorf("apiKey missing from form body: %v", gotForm)
	}
	if got := gotForm["adults"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("schema default for adults missing: %v", gotForm)
	}
	if got := gotForm["country"]; len(got) != 1 || got[0] != "GB" {
		t.Errorf("localisation triple missing: %v", gotForm)
	}
	if _, ok := gotForm["stops"]; ok {
		t.Error("polling-only fields must not be sent with session creation")
	}
}

func TestLivePricing_FetchLinksResponse(t *testing.T) {
	server, _ := liveServer(t, completePoll)
	l := newLive(t, testConfig(), server)

	result, err := l.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if result.SessionKey != "abc123" || result.Status != "UpdatesComplete" {
		t.Errorf("unexpected envelope: %q %q", result.SessionKey, result.Status)
	}
	if len(result.Itineraries) != 2 {
		t.Fatalf("expected 2 itineraries, got %d", len(result.Itineraries))
	}

	first := result.Itineraries[0]
	if first.OutboundLeg == nil || first.OutboundLeg.ID != "leg-out-1" {
		t.Fatal("outbound leg must resolve by string id")
	}
	if first.OutboundLeg.Origin == nil || first.OutboundLeg.Origin.Iata != "LHR" {
		t.Errorf("leg origin not resolved: %+v", first.OutboundLeg.Origin)
	}
	if first.OutboundLeg.Carrier == nil || first.OutboundLeg.Carrier.Code != "BA" {
		t.Errorf("single carrier must flatten: %+v", first.OutboundLeg.Carrier)
	}
	if len(first.InboundLeg.Carriers) != 2 {
		t.Errorf("two-carrier leg must keep the list, got %d", len(first.InboundLeg.Carriers))
	}

	fn := first.OutboundLeg.FlightNumbers[0]
	if fn.Code != "BA117" {
		t.Errorf("flight code must compose display code and number, got %q", fn.Code)
	}
	if fn.Carrier == nil || fn.Carrier.Name != "British Airways" {
		t.Errorf("flight carrier not resolved: %+v", fn.Carrier)
	}
	badFn := first.InboundLeg.FlightNumbers[0]
	if badFn.Carrier != nil || badFn.Code != "" {
		t.Errorf("unknown carrier id must leave carrier and code unset: %+v", badFn)
	}

	options := first.PricingOptions
	if len(options) != 2 {
		t.Fatalf("expected 2 pricing options, got %d", len(options))
	}
	if options[0].Agent == nil || options[0].Agent.Name != "Expedia" {
		t.Errorf("single agent must flatten onto the option: %+v", options[0].Agent)
	}
	if len(options[1].Agents) != 2 {
		t.Errorf("two-agent option must keep the list, got %d", len(options[1].Agents))
	}

	second := result.Itineraries[1]
	if second.OutboundLeg != nil {
		t.Error("an unresolvable leg id must leave the leg unset")
	}
	if second.PricingOptions[0].Agent != nil || second.PricingOptions[0].Agents != nil {
		t.Error("an unresolvable agent id must produce no agents")
	}
}

func TestLivePricing_FetchRemoveIDs(t *testing.T) {
	server, _ := liveServer(t, completePoll)
	cfg := testConfig()
	cfg.RemoveIDs = true
	l := newLive(t, cfg, server)

	result, err := l.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	first := result.Itineraries[0]
	if first.OutboundLegID != "" || first.InboundLegID != "" {
		t.Error("itinerary leg ids must be cleared")
	}
	if first.OutboundLeg.CarrierIDs != nil || first.OutboundLeg.OriginID != 0 {
		t.Error("leg linking ids must be cleared")
	}
	if first.PricingOptions[0].AgentIDs != nil {
		t.Error("agent ids must be cleared")
	}
	if first.OutboundLeg.FlightNumbers[0].CarrierID != 0 {
		t.Error("flight number carrier id must be cleared")
	}
	if first.OutboundLeg.ID != "leg-out-1" {
		t.Error("the leg's own id must stay")
	}
}

func TestLivePricing_FetchCheapestOnly(t *testing.T) {
	server, _ := liveServer(t, completePoll)
	l := newLive(t, testConfig(), server)

	result, err := l.Fetch(context.Background(), true)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	options := result.Itineraries[0].PricingOptions
	if len(options) != 1 {
		t.Fatalf("expected the cheapest option only, got %d", len(options))
	}
	if options[0].Price != 399 {
		t.Errorf("expected price 399, got %v", options[0].Price)
	}
}

func TestLivePricing_FetchWaitsForCompletion(t *testing.T) {
	pending := func(w http.ResponseWriter) {
		w.Write([]byte(`{"SessionKey": "abc123", "Status": "UpdatesPending"}`))
	}
	server, polls := liveServer(t, pending, pending, completePoll)
	l := newLive(t, testConfig(), server)

	result, err := l.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if *polls != 3 {
		t.Errorf("expected 3 polls, got %d", *polls)
	}
	if result.Status != "UpdatesComplete" {
		t.Errorf("expected the completed result, got status %q", result.Status)
	}
}

func TestLivePricing_FetchTimesOut(t *testing.T) {
	pending := func(w http.ResponseWriter) {
		w.Write([]byte(`{"SessionKey": "abc123", "Status": "UpdatesPending"}`))
	}
	server, _ := liveServer(t, pending)
	cfg := testConfig()
	cfg.SessionAttempts = 3
	l := newLive(t, cfg, server)

	_, err := l.Fetch(context.Background(), false)
	if !errors.Is(err, travel.ErrSessionTimeout) {
		t.Fatalf("expected ErrSessionTimeout, got %v", err)
	}
}

func TestLivePricing_FetchNotModified(t *testing.T) {
	server, _ := liveServer(t, func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotModified)
	})
	l := newLive(t, testConfig(), server)

	result, err := l.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if result.SessionKey != "abc123" {
		t.Errorf("expected the session key on a 304 result, got %q", result.SessionKey)
	}
	if result.Itineraries != nil {
		t.Error("a 304 answer must yield no itineraries")
	}
}

func TestLivePricing_FetchSessionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ValidationErrors":[]}`, http.StatusBadRequest)
	}))
	defer server.Close()
	l := newLive(t, testConfig(), server)

	_, err := l.Fetch(context.Background(), false)
	var terr *travel.TransportError
	if !errors.As(err, &terr) || terr.Status != http.StatusBadRequest {
		t.Fatalf("expected a 400 TransportError, got %v", err)
	}
}
