package carhire

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voyagekit/skytravel/pkg/travel"
)

const livePricesPath = "/carhire/liveprices/v2/"

// CarClass describes a vehicle category offers refer to by id.
type CarClass struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Size  string `json:"size,omitempty"`
	Doors int    `json:"doors,omitempty"`
	Bags  int    `json:"bags,omitempty"`
}

// Website is a rental provider. InProgress marks providers the session is
// still collecting prices from.
type Website struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	InProgress bool   `json:"in_progress,omitempty"`
}

// Image is a vehicle photo offers refer to by id.
type Image struct {
	ID  int    `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Car is one rental offer with its class, provider and image resolved. The
// *_id fields are the original linking ids; they are cleared when
// Config.RemoveIDs is set. ImagePath is filled only when an image saver is
// configured.
type Car struct {
	CarClassID  int       `json:"car_class_id,omitempty"`
	WebsiteID   int       `json:"website_id,omitempty"`
	ImageID     int       `json:"image_id,omitempty"`
	CarClass    *CarClass `json:"car_class,omitempty"`
	Website     *Website  `json:"website,omitempty"`
	Image       *Image    `json:"image,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	DeeplinkURL string    `json:"deeplink_url,omitempty"`
}

// Result is the linked output of one car-hire poll.
type Result struct {
	Cars       []Car      `json:"cars,omitempty"`
	Websites   []Website  `json:"websites,omitempty"`
	CarClasses []CarClass `json:"car_classes,omitempty"`
}

// ImageSaver archives a remote image and returns its local path, or "" when
// the image could not be saved.
type ImageSaver interface {
	Save(ctx context.Context, url, dir string) string
}

// LivePrices runs car-hire searches against the live-pricing endpoint. The
// session is created with a GET whose route is encoded as path segments;
// the session id again arrives in the Location header.
type LivePrices struct {
	// BaseURL is the API root the endpoint paths are appended to.
	BaseURL string

	client    *travel.Client
	params    *travel.Params
	sessionID string
	saver     ImageSaver
	saveDir   string
}

// NewLivePrices creates a car-hire client backed by c.
func NewLivePrices(c *travel.Client) *LivePrices {
	schema := travel.Schema{
		Session: []travel.Field{
			{Name: "pickupplace", Default: "LHR"},
			{Name: "dropoffplace", Default: "LHR"},
			{Name: "pickupdatetime", Default: time.Now().AddDate(0, 0, 7).Format("2006-01-02T15:04")},
			{Name: "dropoffdatetime", Default: time.Now().AddDate(0, 0, 8).Format("2006-01-02T15:04")},
			{Name: "driverage", Default: "30"},
		},
	}
	return &LivePrices{
		BaseURL: travel.BaseURL,
		client:  c,
		params:  travel.NewParams(schema, c.Logger()),
	}
}

// Set assigns a request parameter. Unknown names are logged and ignored.
func (l *LivePrices) Set(name, value string) { l.params.Set(name, value) }

// SetAll assigns every entry of values.
func (l *LivePrices) SetAll(values map[string]string) { l.params.SetAll(values) }

// SessionID returns the current session id, or "" before Session succeeds.
func (l *LivePrices) SessionID() string { return l.sessionID }

// SaveImages archives every resolved vehicle image into dir during linking.
func (l *LivePrices) SaveImages(saver ImageSaver, dir string) {
	l.saver = saver
	l.saveDir = dir
}

// SessionURL renders the session creation URL: the route parameters follow
// the localisation triple as path segments.
func (l *LivePrices) SessionURL() string {
	cfg := l.client.Config()
	segments := []string{
		cfg.Country,
		cfg.Currency,
		cfg.Locale,
		l.params.Get("pickupplace"),
		l.params.Get("dropoffplace"),
		l.params.Get("pickupdatetime"),
		l.params.Get("dropoffdatetime"),
		l.params.Get("driverage"),
	}
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return l.BaseURL + livePricesPath + strings.Join(kept, "/")
}

// Session creates a car-hire pricing session. The endpoint requires the
// caller's IP, so Config.UserIP must be set.
func (l *LivePrices) Session(ctx context.Context) (string, error) {
	cfg := l.client.Config()
	query := url.Values{
		"apiKey": {cfg.APIKey},
		"userip": {cfg.UserIP},
	}
	id, err := l.client.CreateSession(ctx, http.MethodGet, l.SessionURL(), query)
	if err != nil {
		return "", err
	}
	l.sessionID = id
	return id, nil
}

// Fetch polls the session until the provider reports the price collection
// finished, creating the session first when none exists. A 304 answer means
// nothing changed since the previous poll and yields an empty result.
func (l *LivePrices) Fetch(ctx context.Context) (*Result, error) {
	if l.sessionID == "" {
		if _, err := l.Session(ctx); err != nil {
			return nil, err
		}
	}

	cfg := l.client.Config()
	pollURL := l.BaseURL + livePricesPath + l.sessionID
	query := url.Values{"apiKey": {cfg.APIKey}}

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
			return &Result{}, nil
		}

		var doc document
		if err := resp.Decode(&doc); err != nil {
			return nil, err
		}
		if travel.PollDone(resp.Status) && !doc.pending() {
			return l.link(ctx, &doc), nil
		}
		l.client.Logger().Debug("prices pending", "status", resp.Status, "attempt", attempt+1)
	}
	return nil, fmt.Errorf("%w after %d polls", travel.ErrSessionTimeout, cfg.SessionAttempts)
}
