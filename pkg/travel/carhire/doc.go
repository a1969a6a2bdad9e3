// Package carhire provides the car-hire live-pricing client. A GET request
// creates a pricing session from the route path segments, then polls against
// the session URL return offers that are linked against the shared car
// class, website and image collections.
package carhire
