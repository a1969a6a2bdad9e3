// Package travel provides the shared client core for the Skyscanner
// travel-search APIs.
//
// The package handles the concerns every product client needs: request
// dispatch with the correct parameter encoding, the create-session-then-poll
// workflow used by the live-pricing endpoints, schema-validated request
// parameters, referral deep links, and the provider's status-code taxonomy.
//
// Product clients live in subpackages (flights, carhire, hotels, places,
// reference) and share one [Client]. Each product decodes the provider's
// flat JSON collections and links them into nested results; the shared
// [Index] primitive builds the id lookup tables used for that linking.
//
// # Usage
//
//	client := travel.NewClient(travel.Config{APIKey: key})
//	browse := flights.NewBrowse(client)
//	browse.Set("originPlace", "LHR")
//	result, err := browse.Fetch(ctx, flights.BrowseQuotes)
package travel
