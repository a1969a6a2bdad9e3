package flights

// Place is an airport, city or country record from the response's Places
// collection. Referenced by id from quote legs and routes.
type Place struct {
	ID             int    `json:"id,omitempty"`
	Iata           string `json:"iata,omitempty"`
	Name           string `json:"name,omitempty"`
	Type           string `json:"type,omitempty"`
	SkyscannerCode string `json:"skyscanner_code,omitempty"`
	CityName       string `json:"city_name,omitempty"`
	CityID         string `json:"city_id,omitempty"`
	CountryName    string `json:"country_name,omitempty"`
}

// Carrier is an airline record. Browse-cache responses carry only id and
// name; live-pricing responses fill the remaining fields.
type Carrier struct {
	ID          int    `json:"id,omitempty"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayCode string `json:"display_code,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
}

// QuoteLeg is one direction of a browse-cache quote with its carrier and
// place references resolved.
//
// The shape of the carrier information depends on the client configuration:
// with flattening enabled a leg with exactly one carrier populates Carrier
// and leaves Carriers nil, otherwise Carriers holds the full list. The
// *_ids fields are the original linking ids; they are cleared when
// Config.RemoveIDs is set.
type QuoteLeg struct {
	CarrierIDs    []int     `json:"carrier_ids,omitempty"`
	OriginID      int       `json:"origin_id,omitempty"`
	DestinationID int       `json:"destination_id,omitempty"`
	Carrier       *Carrier  `json:"carrier,omitempty"`
	Carriers      []Carrier `json:"carriers,omitempty"`
	Origin        *Place    `json:"origin,omitempty"`
	Destination   *Place    `json:"destination,omitempty"`
	DepartsAt     string    `json:"departs_at,omitempty"`
}

// Quote is a cached price for a one-way or return trip.
type Quote struct {
	ID           int       `json:"id"`
	IsDirect     bool      `json:"is_direct"`
	MinimumPrice float64   `json:"minimum_price"`
	UpdatedAt    string    `json:"updated_at,omitempty"`
	OutboundLeg  *QuoteLeg `json:"outbound_leg,omitempty"`
	InboundLeg   *QuoteLeg `json:"inbound_leg,omitempty"`
}

// Route is the cheapest known price between two places, with the quotes
// backing it attached in already-linked form.
type Route struct {
	OriginID      int     `json:"origin_id,omitempty"`
	DestinationID int     `json:"destination_id,omitempty"`
	Origin        *Place  `json:"origin,omitempty"`
	Destination   *Place  `json:"destination,omitempty"`
	CheapestPrice float64 `json:"cheapest_price,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
	QuoteIDs      []int   `json:"quote_ids,omitempty"`
	Quotes        []Quote `json:"quotes,omitempty"`
}

// DateBucket is the cheapest known price for one departure date or month.
type DateBucket struct {
	Date          string  `json:"date,omitempty"`
	CheapestPrice float64 `json:"cheapest_price,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
	QuoteIDs      []int   `json:"quote_ids,omitempty"`
	Quotes        []Quote `json:"quotes,omitempty"`
}

// GridCell pairs a date with its minimum price. Grid cells are joined
// positionally from two parallel arrays, not by id.
type GridCell struct {
	Date         string  `json:"date"`
	MinimumPrice float64 `json:"minimum_price,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// BrowseResult is the linked output of one browse-cache request. The
// method-specific fields (Routes, dates, Grid) are populated only for the
// matching browse method.
type BrowseResult struct {
	Places        []Place      `json:"places,omitempty"`
	Carriers      []Carrier    `json:"carriers,omitempty"`
	Quotes        []Quote      `json:"quotes,omitempty"`
	Routes        []Route      `json:"routes,omitempty"`
	OutboundDates []DateBucket `json:"outbound_dates,omitempty"`
	InboundDates  []DateBucket `json:"inbound_dates,omitempty"`
	Grid          []GridCell   `json:"grid,omitempty"`
	ReferralURL   string       `json:"referral_url,omitempty"`
}
