package flights

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/voyagekit/skytravel/pkg/travel"
)

// BrowseMethod selects one of the browse-cache endpoints.
type BrowseMethod string

const (
	BrowseQuotes BrowseMethod = "browsequotes"
	BrowseRoutes BrowseMethod = "browseroutes"
	BrowseDates  BrowseMethod = "browsedates"
	BrowseGrid   BrowseMethod = "browsegrid"
)

// Browse queries the cached-price endpoints. Results are served from the
// provider's price cache, so no session handshake is needed; each method is
// a single GET.
type Browse struct {
	// BaseURL is the API root the endpoint paths are appended to.
	BaseURL string

	client *travel.Client
	params *travel.Params
}

// NewBrowse creates a browse-cache client backed by c.
func NewBrowse(c *travel.Client) *Browse {
	schema := travel.Schema{
		Session: []travel.Field{
			{Name: "originPlace", Default: "LHR"},
			{Name: "destinationPlace", Default: "JFK"},
			{Name: "outboundPartialDate", Default: time.Now().AddDate(0, 1, 0).Format("2006-01")},
			{Name: "inboundPartialDate"},
		},
	}
	return &Browse{
		BaseURL: travel.BaseURL,
		client:  c,
		params:  travel.NewParams(schema, c.Logger()),
	}
}

// Set assigns a request parameter. Unknown names are logged and ignored.
func (b *Browse) Set(name, value string) { b.params.Set(name, value) }

// SetAll assigns every entry of values.
func (b *Browse) SetAll(values map[string]string) { b.params.SetAll(values) }

// URL renders the request URL for method: the endpoint path followed by the
// localisation triple and the route parameters as path segments. Unset
// optional segments (the inbound date of a one-way search) are dropped.
func (b *Browse) URL(method BrowseMethod) string {
	cfg := b.client.Config()
	segments := []string{
		cfg.Country,
		cfg.Currency,
		cfg.Locale,
		b.params.Get("originPlace"),
		b.params.Get("destinationPlace"),
		b.params.Get("outboundPartialDate"),
		b.params.Get("inboundPartialDate"),
	}
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return b.BaseURL + "/" + string(method) + "/v1.0/" + strings.Join(kept, "/")
}

// referralURL builds the deep link matching the current route parameters.
func (b *Browse) referralURL() string {
	cfg := b.client.Config()
	return travel.ReferralLink([]string{
		cfg.Country,
		cfg.Currency,
		cfg.Locale,
		b.params.Get("originPlace"),
		b.params.Get("destinationPlace"),
		b.params.Get("outboundPartialDate"),
		b.params.Get("inboundPartialDate"),
	}, cfg.APIKey)
}

// browseLinkers maps each method to the transform producing its linked
// result. Dispatch happens before any request is issued, so an unsupported
// method never reaches the network.
var browseLinkers = map[BrowseMethod]func(*browseDocument, travel.Config) (*BrowseResult, error){
	BrowseQuotes: linkQuotes,
	BrowseRoutes: linkRoutes,
	BrowseDates:  linkDates,
	BrowseGrid:   linkGrid,
}

// Fetch performs the browse request for method and links the flat response
// collections into nested results. Unknown methods fail with
// travel.ErrInvalidMethod without issuing a request.
func (b *Browse) Fetch(ctx context.Context, method BrowseMethod) (*BrowseResult, error) {
	link, ok := browseLinkers[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", travel.ErrInvalidMethod, method)
	}

	var doc browseDocument
	query := url.Values{"apiKey": {b.client.Config().APIKey}}
	if err := b.client.GetJSON(ctx, b.URL(method), query, &doc); err != nil {
		return nil, err
	}

	result, err := link(&doc, b.client.Config())
	if err != nil {
		return nil, err
	}
	result.ReferralURL = b.referralURL()
	return result, nil
}
