// Package flights provides the flight search clients: the browse-cache
// endpoints serving aggregated price data (quotes, routes, dates, grid) and
// the session-polled live-pricing endpoint.
//
// Both clients decode the provider's flat collections, where quotes, routes
// and itineraries reference places, carriers, agents and legs by numeric or
// string id, and link them into nested results. Linking is a pure
// transform: the decoded document is never modified, and every call
// produces a fresh result.
package flights
