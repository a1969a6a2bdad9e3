package flights

import "github.com/voyagekit/skytravel/pkg/travel"

// Raw wire shapes of the live-pricing poll response. Itineraries reference
// legs by string id; legs reference places, carriers and segments by
// numeric id; pricing options reference agents by numeric id.

type liveDocument struct {
	SessionKey  string          `json:"SessionKey"`
	Status      string          `json:"Status"`
	Itineraries []liveItinerary `json:"Itineraries"`
	Legs        []liveLeg       `json:"Legs"`
	Carriers    []liveCarrier   `json:"Carriers"`
	Agents      []liveAgent     `json:"Agents"`
	Places      []livePlace     `json:"Places"`
}

type liveItinerary struct {
	OutboundLegID  string              `json:"OutboundLegId"`
	InboundLegID   string              `json:"InboundLegId"`
	PricingOptions []livePricingOption `json:"PricingOptions"`
}

type livePricingOption struct {
	AgentIDs          []int   `json:"Agents"`
	QuoteAgeInMinutes int     `json:"QuoteAgeInMinutes"`
	Price             float64 `json:"Price"`
	DeeplinkURL       string  `json:"DeeplinkUrl"`
}

type liveLeg struct {
	ID             string             `json:"Id"`
	SegmentIDs     []int              `json:"SegmentIds"`
	OriginStation  int                `json:"OriginStation"`
	DestStation    int                `json:"DestinationStation"`
	Departure      string             `json:"Departure"`
	Arrival        string             `json:"Arrival"`
	Duration       int                `json:"Duration"`
	JourneyMode    string             `json:"JourneyMode"`
	Stops          []int              `json:"Stops"`
	CarrierIDs     []int              `json:"Carriers"`
	Directionality string             `json:"Directionality"`
	FlightNumbers  []liveFlightNumber `json:"FlightNumbers"`
}

type liveFlightNumber struct {
	FlightNumber string `json:"FlightNumber"`
	CarrierID    int    `json:"CarrierId"`
}

type liveCarrier struct {
	ID          int    `json:"Id"`
	Code        string `json:"Code"`
	Name        string `json:"Name"`
	ImageURL    string `json:"ImageUrl"`
	DisplayCode string `json:"DisplayCode"`
}

type liveAgent struct {
	ID                 int    `json:"Id"`
	Name               string `json:"Name"`
	ImageURL           string `json:"ImageUrl"`
	Status             string `json:"Status"`
	OptimisedForMobile bool   `json:"OptimisedForMobile"`
	Type               string `json:"Type"`
}

type livePlace struct {
	ID   int    `json:"Id"`
	Code string `json:"Code"`
	Type string `json:"Type"`
	Name string `json:"Name"`
}

func (c liveCarrier) linked() Carrier {
	return Carrier{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		DisplayCode: c.DisplayCode,
		ImagePath:   c.ImageURL,
	}
}

func (a liveAgent) linked() Agent {
	return Agent{
		ID:                 a.ID,
		Name:               a.Name,
		ImageURL:           a.ImageURL,
		Status:             a.Status,
		OptimisedForMobile: a.OptimisedForMobile,
		Type:               a.Type,
	}
}

func (p livePlace) linked() Place {
	return Place{ID: p.ID, Iata: p.Code, Name: p.Name, Type: p.Type}
}

// linkLive resolves every id reference of a poll response into nested
// structures. Unresolvable references are omitted; the itinerary or leg
// carrying them is always kept.
func linkLive(doc *liveDocument, cfg travel.Config, cheapestOnly bool) *LiveResult {
	carrierAt := travel.Index(doc.Carriers, func(c liveCarrier) int { return c.ID })
	agentAt := travel.Index(doc.Agents, func(a liveAgent) int { return a.ID })
	placeAt := travel.Index(doc.Places, func(p livePlace) int { return p.ID })
	legAt := travel.Index(doc.Legs, func(l liveLeg) string { return l.ID })

	linkLeg := func(id string) *ItineraryLeg {
		i, ok := legAt[id]
		if !ok {
			return nil
		}
		leg := doc.Legs[i]
		out := &ItineraryLeg{
			ID:             leg.ID,
			SegmentIDs:     leg.SegmentIDs,
			DepartsAt:      leg.Departure,
			ArrivesAt:      leg.Arrival,
			Duration:       leg.Duration,
			JourneyMode:    leg.JourneyMode,
			StopIDs:        leg.Stops,
			Directionality: leg.Directionality,
		}

		var carriers []Carrier
		for _, cid := range leg.CarrierIDs {
			if j, ok := carrierAt[cid]; ok {
				carriers = append(carriers, doc.Carriers[j].linked())
			}
		}
		if cfg.FlattenSingle() && len(carriers) == 1 {
			out.Carrier = &carriers[0]
		} else {
			out.Carriers = carriers
		}

		if j, ok := placeAt[leg.OriginStation]; ok {
			p := doc.Places[j].linked()
			out.Origin = &p
		}
		if j, ok := placeAt[leg.DestStation]; ok {
			p := doc.Places[j].linked()
			out.Destination = &p
		}

		for _, fn := range leg.FlightNumbers {
			number := FlightNumber{Number: fn.FlightNumber}
			if j, ok := carrierAt[fn.CarrierID]; ok {
				c := doc.Carriers[j].linked()
				number.Carrier = &c
				number.Code = c.DisplayCode + fn.FlightNumber
			}
			if !cfg.RemoveIDs {
				number.CarrierID = fn.CarrierID
			}
			out.FlightNumbers = append(out.FlightNumbers, number)
		}

		if !cfg.RemoveIDs {
			out.CarrierIDs = leg.CarrierIDs
			out.OriginID = leg.OriginStation
			out.DestinationID = leg.DestStation
		}
		return out
	}

	linkOption := func(raw livePricingOption) PricingOption {
		option := PricingOption{
			QuoteAge:    raw.QuoteAgeInMinutes,
			Price:       raw.Price,
			DeeplinkURL: raw.DeeplinkURL,
		}
		var agents []Agent
		for _, id := range raw.AgentIDs {
			if j, ok := agentAt[id]; ok {
				agents = append(agents, doc.Agents[j].linked())
			}
		}
		if cfg.FlattenSingle() && len(agents) == 1 {
			option.Agent = &agents[0]
		} else {
			option.Agents = agents
		}
		if !cfg.RemoveIDs {
			option.AgentIDs = raw.AgentIDs
		}
		return option
	}

	result := &LiveResult{SessionKey: doc.SessionKey, Status: doc.Status}
	for _, raw := range doc.Itineraries {
		itinerary := Itinerary{
			OutboundLeg: linkLeg(raw.OutboundLegID),
			InboundLeg:  linkLeg(raw.InboundLegID),
		}
		for _, option := range raw.PricingOptions {
			itinerary.PricingOptions = append(itinerary.PricingOptions, linkOption(option))
		}
		if cheapestOnly && len(itinerary.PricingOptions) > 1 {
			cheapest := itinerary.PricingOptions[0]
			for _, option := range itinerary.PricingOptions[1:] {
				if option.Price < cheapest.Price {
					cheapest = option
				}
			}
			itinerary.PricingOptions = []PricingOption{cheapest}
		}
		if !cfg.RemoveIDs {
			itinerary.OutboundLegID = raw.OutboundLegID
			itinerary.InboundLegID = raw.InboundLegID
		}
		result.Itineraries = append(result.Itineraries, itinerary)
	}

	for _, p := range doc.Places {
		result.Places = append(result.Places, p.linked())
	}
	for _, c := range doc.Carriers {
		result.Carriers = append(result.Carriers, c.linked())
	}
	for _, a := range doc.Agents {
		result.Agents = append(result.Agents, a.linked())
	}
	return result
}
