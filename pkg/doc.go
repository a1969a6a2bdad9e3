// Package pkg provides the core libraries for the skytravel API client.
//
// # Overview
//
// Skytravel wraps the travel partner API: cached and live flight prices,
// hotel and car-hire offers, geo lookups and localisation reference data.
// The pkg directory is organized into three areas:
//
//  1. [travel] - The shared client core and the product clients
//  2. [cache] - Response cache backends (file, Redis, Bolt, null)
//  3. [imagestore] - Local archiving of carrier logos and vehicle photos
//
// # Architecture
//
// The typical data flow through a search:
//
//	request parameters ([travel.Params], schema-validated)
//	         ↓
//	    [travel.Client] (dispatch, session create/poll, status taxonomy)
//	         ↓
//	    flat provider collections (quotes, legs, places, carriers, agents)
//	         ↓
//	    product linkers (resolve id references into nested results)
//	         ↓
//	    linked results (plus referral deep links)
//
// # Quick Start
//
// Search cached round-trip quotes:
//
//	client := travel.NewClient(travel.Config{APIKey: key})
//	browse := flights.NewBrowse(client)
//	browse.Set("originPlace", "LHR")
//	browse.Set("destinationPlace", "JFK")
//	result, err := browse.Fetch(ctx, flights.BrowseQuotes)
//
// # Main Packages
//
// [travel] - Shared core: the HTTP client, request parameter schemas, the
// create-session-then-poll workflow, referral links and the provider status
// taxonomy.
//
// [travel/flights] - Browse-cache endpoints (quotes, routes, dates, grid)
// and the session-polled live-pricing endpoint.
//
// [travel/carhire] - Car-hire live prices with car class, provider and
// image linking.
//
// [travel/hotels] - Hotel price search against the gateway host.
//
// [travel/places] - Place and hotel autosuggest, place details, and the
// whitelisted geo catalogue.
//
// [travel/reference] - Supported currencies, locales and market countries.
//
// [cache] - Cache backends behind one interface, selected by configuration:
// FileCache for the CLI, RedisCache for shared deployments, BoltCache for a
// single-file local store, NullCache to disable caching.
//
// [imagestore] - Idempotent downloads of provider images to disk.
//
// [travel]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel
// [travel/flights]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel/flights
// [travel/carhire]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel/carhire
// [travel/hotels]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel/hotels
// [travel/places]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel/places
// [travel/reference]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/travel/reference
// [cache]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/cache
// [imagestore]: https://pkg.go.dev/github.com/voyagekit/skytravel/pkg/imagestore
package pkg
