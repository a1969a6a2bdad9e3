package flights

import (
	"encoding/json"

	"github.com/voyagekit/skytravel/pkg/travel"
)

// Raw wire shapes of the browse-cache responses. The provider returns flat
// collections in PascalCase; quotes reference carriers and places by
// numeric id, routes and date buckets reference quotes by id, and the grid
// endpoint returns two parallel rows joined by position.

type browseDocument struct {
	Quotes   []browseQuote   `json:"Quotes"`
	Places   []browsePlace   `json:"Places"`
	Carriers []browseCarrier `json:"Carriers"`
	Routes   []browseRoute   `json:"Routes"`

	// Dates is method-dependent: an object with outbound and inbound
	// buckets for browsedates, a two-dimensional cell array for browsegrid.
	Dates json.RawMessage `json:"Dates"`
}

type browseQuote struct {
	QuoteID       int        `json:"QuoteId"`
	MinPrice      float64    `json:"MinPrice"`
	Direct        bool       `json:"Direct"`
	OutboundLeg   *browseLeg `json:"OutboundLeg"`
	InboundLeg    *browseLeg `json:"InboundLeg"`
	QuoteDateTime string     `json:"QuoteDateTime"`
}

type browseLeg struct {
	CarrierIDs    []int  `json:"CarrierIds"`
	OriginID      int    `json:"OriginId"`
	DestinationID int    `json:"DestinationId"`
	DepartureDate string `json:"DepartureDate"`
}

type browsePlace struct {
	PlaceID        int    `json:"PlaceId"`
	IataCode       string `json:"IataCode"`
	Name           string `json:"Name"`
	Type           string `json:"Type"`
	SkyscannerCode string `json:"SkyscannerCode"`
	CityName       string `json:"CityName"`
	CityID         string `json:"CityId"`
	CountryName    string `json:"CountryName"`
}

type browseCarrier struct {
	CarrierID int    `json:"CarrierId"`
	Name      string `json:"Name"`
}

type browseRoute struct {
	OriginID      int     `json:"OriginId"`
	DestinationID int     `json:"DestinationId"`
	QuoteIDs      []int   `json:"QuoteIds"`
	Price         float64 `json:"Price"`
	QuoteDateTime string  `json:"QuoteDateTime"`
}

type browseDateBucket struct {
	PartialDate   string  `json:"PartialDate"`
	QuoteIDs      []int   `json:"QuoteIds"`
	Price         float64 `json:"Price"`
	QuoteDateTime string  `json:"QuoteDateTime"`
}

type browseDateAxes struct {
	OutboundDates []browseDateBucket `json:"OutboundDates"`
	InboundDates  []browseDateBucket `json:"InboundDates"`
}

type browseGridCell struct {
	DateString    string  `json:"DateString"`
	MinPrice      float64 `json:"MinPrice"`
	QuoteDateTime string  `json:"QuoteDateTime"`
}

func (p browsePlace) linked() Place {
	return Place{
		ID:             p.PlaceID,
		Iata:           p.IataCode,
		Name:           p.Name,
		Type:           p.Type,
		SkyscannerCode: p.SkyscannerCode,
		CityName:       p.CityName,
		CityID:         p.CityID,
		CountryName:    p.CountryName,
	}
}

func (c browseCarrier) linked() Carrier {
	return Carrier{ID: c.CarrierID, Name: c.Name}
}

// browseIndexes holds the id lookup tables shared by every leg of one
// document.
type browseIndexes struct {
	carrierAt map[int]int
	placeAt   map[int]int
}

func indexBrowse(doc *browseDocument) browseIndexes {
	return browseIndexes{
		carrierAt: travel.Index(doc.Carriers, func(c browseCarrier) int { return c.CarrierID }),
		placeAt:   travel.Index(doc.Places, func(p browsePlace) int { return p.PlaceID }),
	}
}

// linkLeg resolves a leg's carrier and place ids against the shared
// collections. Unresolvable references stay nil; the leg itself is always
// returned. Single-carrier legs collapse to the scalar Carrier field unless
// cfg keeps lists.
func linkLeg(leg *browseLeg, doc *browseDocument, at browseIndexes, cfg travel.Config) *QuoteLeg {
	if leg == nil {
		return nil
	}
	carrierAt, placeAt := at.carrierAt, at.placeAt

	out := &QuoteLeg{DepartsAt: leg.DepartureDate}

	var carriers []Carrier
	for _, id := range leg.CarrierIDs {
		if i, ok := carrierAt[id]; ok {
			carriers = append(carriers, doc.Carriers[i].linked())
		}
	}
	if cfg.FlattenSingle() && len(carriers) == 1 {
		out.Carrier = &carriers[0]
	} else {
		out.Carriers = carriers
	}

	if i, ok := placeAt[leg.OriginID]; ok {
		p := doc.Places[i].linked()
		out.Origin = &p
	}
	if i, ok := placeAt[leg.DestinationID]; ok {
		p := doc.Places[i].linked()
		out.Destination = &p
	}

	if !cfg.RemoveIDs {
		out.CarrierIDs = leg.CarrierIDs
		out.OriginID = leg.OriginID
		out.DestinationID = leg.DestinationID
	}
	return out
}

func linkedQuotes(doc *browseDocument, cfg travel.Config) []Quote {
	at := indexBrowse(doc)
	quotes := make([]Quote, 0, len(doc.Quotes))
	for _, q := range doc.Quotes {
		quotes = append(quotes, Quote{
			ID:           q.QuoteID,
			IsDirect:     q.Direct,
			MinimumPrice: q.MinPrice,
			UpdatedAt:    q.QuoteDateTime,
			OutboundLeg:  linkLeg(q.OutboundLeg, doc, at, cfg),
			InboundLeg:   linkLeg(q.InboundLeg, doc, at, cfg),
		})
	}
	return quotes
}

// resolveQuotes maps a list of quote ids onto already-linked quotes,
// omitting ids with no match.
func resolveQuotes(ids []int, quotes []Quote, at map[int]int) []Quote {
	var out []Quote
	for _, id := range ids {
		if i, ok := at[id]; ok {
			out = append(out, quotes[i])
		}
	}
	return out
}

func linkQuotes(doc *browseDocument, cfg travel.Config) (*BrowseResult, error) {
	result := &BrowseResult{Quotes: linkedQuotes(doc, cfg)}
	for _, p := range doc.Places {
		result.Places = append(result.Places, p.linked())
	}
	for _, c := range doc.Carriers {
		result.Carriers = append(result.Carriers, c.linked())
	}
	return result, nil
}

func linkRoutes(doc *browseDocument, cfg travel.Config) (*BrowseResult, error) {
	quotes := linkedQuotes(doc, cfg)
	quoteAt := travel.Index(quotes, func(q Quote) int { return q.ID })
	placeAt := travel.Index(doc.Places, func(p browsePlace) int { return p.PlaceID })

	routes := make([]Route, 0, len(doc.Routes))
	for _, r := range doc.Routes {
		route := Route{
			CheapestPrice: r.Price,
			UpdatedAt:     r.QuoteDateTime,
			Quotes:        resolveQuotes(r.QuoteIDs, quotes, quoteAt),
		}
		if i, ok := placeAt[r.OriginID]; ok {
			p := doc.Places[i].linked()
			route.Origin = &p
		}
		if i, ok := placeAt[r.DestinationID]; ok {
			p := doc.Places[i].linked()
			route.Destination = &p
		}
		if !cfg.RemoveIDs {
			route.OriginID = r.OriginID
			route.DestinationID = r.DestinationID
			route.QuoteIDs = r.QuoteIDs
		}
		routes = append(routes, route)
	}
	return &BrowseResult{Routes: routes}, nil
}

func linkDates(doc *browseDocument, cfg travel.Config) (*BrowseResult, error) {
	var axes browseDateAxes
	if len(doc.Dates) > 0 {
		if err := json.Unmarshal(doc.Dates, &axes); err != nil {
			return nil, err
		}
	}

	quotes := linkedQuotes(doc, cfg)
	quoteAt := travel.Index(quotes, func(q Quote) int { return q.ID })

	link := func(buckets []browseDateBucket) []DateBucket {
		out := make([]DateBucket, 0, len(buckets))
		for _, b := range buckets {
			bucket := DateBucket{
				Date:          b.PartialDate,
				CheapestPrice: b.Price,
				UpdatedAt:     b.QuoteDateTime,
				Quotes:        resolveQuotes(b.QuoteIDs, quotes, quoteAt),
			}
			if !cfg.RemoveIDs {
				bucket.QuoteIDs = b.QuoteIDs
			}
			out = append(out, bucket)
		}
		return out
	}

	return &BrowseResult{
		OutboundDates: link(axes.OutboundDates),
		InboundDates:  link(axes.InboundDates),
	}, nil
}

// linkGrid joins the grid's two parallel rows by position: the first row
// carries the date headers, the second the prices. A position where either
// side is missing produces no cell.
func linkGrid(doc *browseDocument, cfg travel.Config) (*BrowseResult, error) {
	var rows [][]*browseGridCell
	if len(doc.Dates) > 0 {
		if err := json.Unmarshal(doc.Dates, &rows); err != nil {
			return nil, err
		}
	}
	if len(rows) < 2 {
		return &BrowseResult{}, nil
	}

	dates, prices := rows[0], rows[1]
	var cells []GridCell
	for i, date := range dates {
		if date == nil || i >= len(prices) || prices[i] == nil {
			continue
		}
		cells = append(cells, GridCell{
			Date:         date.DateString,
			MinimumPrice: prices[i].MinPrice,
			UpdatedAt:    prices[i].QuoteDateTime,
		})
	}
	return &BrowseResult{Grid: cells}, nil
}
