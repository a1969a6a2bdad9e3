// Package reference provides the localisation lookup endpoints: the
// currencies, locales and market countries a search can be localised with.
// The data changes rarely, so these calls benefit most from a configured
// response cache.
package reference

import (
	"context"
	"net/url"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const referencePath = "/reference/v1.0/"

// Currency describes one supported currency and its formatting rules.
type Currency struct {
	Code                        string  `json:"Code"`
	Symbol                      string  `json:"Symbol"`
	ThousandsSeparator          string  `json:"ThousandsSeparator"`
	DecimalSeparator            string  `json:"DecimalSeparator"`
	SymbolOnLeft                bool    `json:"SymbolOnLeft"`
	SpaceBetweenAmountAndSymbol bool    `json:"SpaceBetweenAmountAndSymbol"`
	RoundingCoefficient         float64 `json:"RoundingCoefficient"`
	DecimalDigits               int     `json:"DecimalDigits"`
}

// Locale is one supported locale code with its native name.
type Locale struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// Market is one bookable market country.
type Market struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// Service queries the reference endpoints.
type Service struct {
	// BaseURL is the API root the endpoint paths are appended to.
	BaseURL string

	client *travel.Client
}

// NewService creates a reference client backed by c.
func NewService(c *travel.Client) *Service {
	return &Service{BaseURL: travel.BaseURL, client: c}
}

func (s *Service) query() url.Values {
	return url.Values{"apiKey": {s.client.Config().APIKey}}
}

// Currencies lists the supported currencies.
func (s *Service) Currencies(ctx context.Context) ([]Currency, error) {
	var doc struct {
		Currencies []Currency `json:"Currencies"`
	}
	if err := s.client.GetJSON(ctx, s.BaseURL+referencePath+"currencies", s.query(), &doc); err != nil {
		return nil, err
	}
	return doc.Currencies, nil
}

// Locales lists the supported locales.
func (s *Service) Locales(ctx context.Context) ([]Locale, error) {
	var doc struct {
		Locales []Locale `json:"Locales"`
	}
	if err := s.client.GetJSON(ctx, s.BaseURL+referencePath+"locales", s.query(), &doc); err != nil {
		return nil, err
	}
	return doc.Locales, nil
}

// Markets lists the market countries, localised to the client's locale.
func (s *Service) Markets(ctx context.Context) ([]Market, error) {
	var doc struct {
		Countries []Market `json:"Countries"`
	}
	rawURL := s.BaseURL + referencePath + "countries/" + s.client.Config().Locale
	if err := s.client.GetJSON(ctx, rawURL, s.query(), &doc); err != nil {
		return nil, err
	}
	return doc.Countries, nil
}
