package flights

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const quotesBody = `{
	"Quotes": [
		{
			"QuoteId": 1,
			"MinPrice": 250.5,
			"Direct": true,
			"OutboundLeg": {"CarrierIds": [50], "OriginId": 100, "DestinationId": 200, "DepartureDate": "2026-09-10T00:00:00"},
			"QuoteDateTime": "2026-08-01T10:00:00"
		},
		{
			"QuoteId": 2,
			"MinPrice": 310,
			"Direct": false,
			"OutboundLeg": {"CarrierIds": [50, 51], "OriginId": 100, "DestinationId": 999, "DepartureDate": "2026-09-11T00:00:00"}
		}
	],
	"Places": [
		{"PlaceId": 100, "IataCode": "LHR", "Name": "London Heathrow", "Type": "Station"},
		{"PlaceId": 200, "IataCode": "JFK", "Name": "New York John F. Kennedy", "Type": "Station"}
	],
	"Carriers": [
		{"CarrierId": 50, "Name": "British Airways"},
		{"CarrierId": 51, "Name": "Iberia"}
	]
}`

func testConfig() travel.Config { return travel.Config{APIKey: "0123456789abcdefextra"} }

func newBrowse(t *testing.T, cfg travel.Config, body string) (*Browse, *int) {
	t.Helper()
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := travel.NewClient(cfg, travel.WithLogger(log.New(io.Discard)))
	b := NewBrowse(client)
	b.BaseURL = server.URL
	return b, &calls
}

func TestBrowse_URL(t *testing.T) {
	client := travel.NewClient(testConfig(), travel.WithLogger(log.New(io.Discard)))
	b := NewBrowse(client)
	b.BaseURL = "http://example.test"
	b.SetAll(map[string]string{
		"originPlace":         "SAW",
		"destinationPlace":    "DLM",
		"outboundPartialDate": "2026-10",
	})

	got := b.URL(BrowseQuotes)
	want := "http://example.test/browsequotes/v1.0/GB/GBP/en-GB/SAW/DLM/2026-10"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestBrowse_URLKeepsInboundDate(t *testing.T) {
	client := travel.NewClient(testConfig(), travel.WithLogger(log.New(io.Discard)))
	b := NewBrowse(client)
	b.BaseURL = "http://example.test"
	b.Set("outboundPartialDate", "2026-10")
	b.Set("inboundPartialDate", "2026-11")

	if got := b.URL(BrowseRoutes); !strings.HasSuffix(got, "/LHR/JFK/2026-10/2026-11") {
		t.Errorf("inbound date must be the final segment, got %q", got)
	}
}

func TestBrowse_InvalidMethod(t *testing.T) {
	b, calls := newBrowse(t, testConfig(), `{}`)

	_, err := b.Fetch(context.Background(), BrowseMethod("bogus"))
	if !errors.Is(err, travel.ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
	if *calls != 0 {
		t.Errorf("invalid method must not reach the network, saw %d requests", *calls)
	}
}

func TestBrowse_QuotesLinking(t *testing.T) {
	b, _ := newBrowse(t, testConfig(), quotesBody)

	result, err := b.Fetch(context.Background(), BrowseQuotes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(result.Quotes))
	}

	leg := result.Quotes[0].OutboundLeg
	if leg == nil {
		t.Fatal("outbound leg missing")
	}
	if leg.Carrier == nil || leg.Carrier.Name != "British Airways" {
		t.Errorf("single carrier must flatten to a scalar, got %+v", leg.Carrier)
	}
	if leg.Carriers != nil {
		t.Error("flattened leg must not also carry the list")
	}
	if leg.Origin == nil || leg.Origin.Iata != "LHR" {
		t.Errorf("origin place not resolved: %+v", leg.Origin)
	}
	if leg.Destination == nil || leg.Destination.Iata != "JFK" {
		t.Errorf("destination place not resolved: %+v", leg.Destination)
	}
	if len(leg.CarrierIDs) != 1 || leg.OriginID != 100 {
		t.Error("linking ids must be kept by default")
	}
	if result.Quotes[1].InboundLeg != nil {
		t.Error("one-way quote must have no inbound leg")
	}
}

func TestBrowse_QuotesMissingReferences(t *testing.T) {
	b, _ := newBrowse(t, testConfig(), quotesBody)

	result, err := b.Fetch(context.Background(), BrowseQuotes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	leg := result.Quotes[1].OutboundLeg
	if len(leg.Carriers) != 2 {
		t.Errorf("multi-carrier leg must keep the list, got %d", len(leg.Carriers))
	}
	if leg.Destination != nil {
		t.Error("an unresolvable place id must leave the field unset")
	}
	if leg.DestinationID != 999 {
		t.Error("the unresolved id must survive for inspection")
	}
}

func TestBrowse_QuotesRemoveIDs(t *testing.T) {
	cfg := testConfig()
	cfg.RemoveIDs = true
	b, _ := newBrowse(t, cfg, quotesBody)

	result, err := b.Fetch(context.Background(), BrowseQuotes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	leg := result.Quotes[0].OutboundLeg
	if leg.CarrierIDs != nil || leg.OriginID != 0 || leg.DestinationID != 0 {
		t.Errorf("linking ids must be cleared: %+v", leg)
	}
	if leg.Carrier == nil || leg.Origin == nil {
		t.Error("resolved objects must survive id removal")
	}
	if result.Quotes[0].ID != 1 {
		t.Error("the quote's own id is not a linking id and must stay")
	}
}

func TestBrowse_QuotesKeepSingleLists(t *testing.T) {
	cfg := testConfig()
	cfg.KeepSingleLists = true
	b, _ := newBrowse(t, cfg, quotesBody)

	result, err := b.Fetch(context.Background(), BrowseQuotes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	leg := result.Quotes[0].OutboundLeg
	if leg.Carrier != nil {
		t.Error("flattening disabled, scalar field must stay empty")
	}
	if len(leg.Carriers) != 1 {
		t.Errorf("expected the one-element list, got %d", len(leg.Carriers))
	}
}

func TestBrowse_Routes(t *testing.T) {
	body := `{
		"Routes": [
			{"OriginId": 100, "DestinationId": 200, "QuoteIds": [1, 7], "Price": 250.5, "QuoteDateTime": "2026-08-01T10:00:00"},
			{"OriginId": 100, "DestinationId": 999, "Price": 0}
		],
		"Quotes": [{"QuoteId": 1, "MinPrice": 250.5, "Direct": true}],
		"Places": [
			{"PlaceId": 100, "IataCode": "LHR", "Name": "London Heathrow"},
			{"PlaceId": 200, "IataCode": "JFK", "Name": "New York John F. Kennedy"}
		]
	}`
	b, _ := newBrowse(t, testConfig(), body)

	result, err := b.Fetch(context.Background(), BrowseRoutes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(result.Routes))
	}

	first := result.Routes[0]
	if len(first.Quotes) != 1 || first.Quotes[0].ID != 1 {
		t.Errorf("quote id 1 must resolve and id 7 must be skipped, got %+v", first.Quotes)
	}
	if first.Origin == nil || first.Destination == nil {
		t.Error("route endpoints must be resolved")
	}

	second := result.Routes[1]
	if second.Quotes != nil {
		t.Error("route without quote ids must have no quotes")
	}
	if second.Destination != nil {
		t.Error("an unresolvable destination must stay unset")
	}
}

func TestBrowse_Dates(t *testing.T) {
	body := `{
		"Dates": {
			"OutboundDates": [{"PartialDate": "2026-10-01", "QuoteIds": [1], "Price": 120, "QuoteDateTime": "2026-08-01T10:00:00"}],
			"InboundDates": [{"PartialDate": "2026-10-08", "QuoteIds": [2], "Price": 130}]
		},
		"Quotes": [
			{"QuoteId": 1, "MinPrice": 120, "Direct": true},
			{"QuoteId": 2, "MinPrice": 130, "Direct": false}
		]
	}`
	b, _ := newBrowse(t, testConfig(), body)

	result, err := b.Fetch(context.Background(), BrowseDates)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.OutboundDates) != 1 || len(result.InboundDates) != 1 {
		t.Fatalf("expected one bucket per direction, got %d/%d", len(result.OutboundDates), len(result.InboundDates))
	}
	out := result.OutboundDates[0]
	if out.Date != "2026-10-01" || out.CheapestPrice != 120 {
		t.Errorf("unexpected outbound bucket: %+v", out)
	}
	if len(out.Quotes) != 1 || out.Quotes[0].ID != 1 {
		t.Errorf("bucket quotes not resolved: %+v", out.Quotes)
	}
	if result.InboundDates[0].Quotes[0].ID != 2 {
		t.Error("inbound bucket must resolve its own quote")
	}
}

func TestBrowse_GridPositional(t *testing.T) {
	body := `{
		"Dates": [
			[null, {"DateString": "2026-10-01"}, {"DateString": "2026-10-02"}, {"DateString": "2026-10-03"}],
			[null, {"MinPrice": 120, "QuoteDateTime": "2026-08-01T10:00:00"}, null, {"MinPrice": 99}]
		]
	}`
	b, _ := newBrowse(t, testConfig(), body)

	result, err := b.Fetch(context.Background(), BrowseGrid)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.Grid) != 2 {
		t.Fatalf("positions with a gap on either side must be skipped, got %d cells", len(result.Grid))
	}
	if result.Grid[0].Date != "2026-10-01" || result.Grid[0].MinimumPrice != 120 {
		t.Errorf("unexpected first cell: %+v", result.Grid[0])
	}
	if result.Grid[1].Date != "2026-10-03" || result.Grid[1].MinimumPrice != 99 {
		t.Errorf("unexpected second cell: %+v", result.Grid[1])
	}
}

func TestBrowse_EmptyDocument(t *testing.T) {
	b, _ := newBrowse(t, testConfig(), `{}`)

	for _, method := range []BrowseMethod{BrowseQuotes, BrowseRoutes, BrowseDates, BrowseGrid} {
		result, err := b.Fetch(context.Background(), method)
		if err != nil {
			t.Fatalf("%s on empty document failed: %v", method, err)
		}
		if result == nil {
			t.Fatalf("%s must still produce a result", method)
		}
	}
}

func TestBrowse_ReferralURL(t *testing.T) {
	b, _ := newBrowse(t, testConfig(), quotesBody)
	b.Set("outboundPartialDate", "2026-10")

	result, err := b.Fetch(context.Background(), BrowseQuotes)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	want := travel.ReferralBaseURL + "GB/GBP/en-GB/LHR/JFK/2026-10?apiKey=0123456789abcdef"
	if result.ReferralURL != want {
		t.Errorf("referral URL = %q, want %q", result.ReferralURL, want)
	}
}
