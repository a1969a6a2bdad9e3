package hotels

import "github.com/voyagekit/skytravel/pkg/travel"

type document struct {
	CorrelationID string `json:"correlation_id"`
	Results       struct {
		Hotels   []rawHotel `json:"hotels"`
		Partners []Partner  `json:"partners"`
	} `json:"results"`
}

type rawHotel struct {
	HotelID string     `json:"hotel_id"`
	Name    string     `json:"name"`
	Stars   string     `json:"stars"`
	Images  []string   `json:"images"`
	Offers  []rawOffer `json:"offers"`
}

type rawOffer struct {
	PartnerID string  `json:"partner_id"`
	Price     float64 `json:"price"`
	RoomType  string  `json:"room_type"`
	Deeplink  string  `json:"deeplink"`
}

// link resolves every offer's partner id. Unresolvable partners are
// omitted; the offer itself is always kept.
func link(doc *document, cfg travel.Config) *SearchResult {
	partnerAt := travel.Index(doc.Results.Partners, func(p Partner) string { return p.ID })

	result := &SearchResult{
		CorrelationID: doc.CorrelationID,
		Partners:      doc.Results.Partners,
	}
	for _, raw := range doc.Results.Hotels {
		hotel := Hotel{
			ID:     raw.HotelID,
			Name:   raw.Name,
			Stars:  raw.Stars,
			Images: raw.Images,
		}
		for _, o := range raw.Offers {
			offer := Offer{
				Price:    o.Price,
				RoomType: o.RoomType,
				Deeplink: o.Deeplink,
			}
			if i, ok := partnerAt[o.PartnerID]; ok {
				offer.Partner = &doc.Results.Partners[i]
			}
			if !cfg.RemoveIDs {
				offer.PartnerID = o.PartnerID
			}
			hotel.Offers = append(hotel.Offers, offer)
		}
		result.Hotels = append(result.Hotels, hotel)
	}
	return result
}
