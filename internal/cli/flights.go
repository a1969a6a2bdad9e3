package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/travel/flights"
)

// browseMethods maps the user-facing method names to the endpoint selectors.
var browseMethods = map[string]flights.BrowseMethod{
	"quotes": flights.BrowseQuotes,
	"routes": flights.BrowseRoutes,
	"dates":  flights.BrowseDates,
	"grid":   flights.BrowseGrid,
}

// flightsCommand creates the flight search command group.
func (c *CLI) flightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search flight prices",
	}

	cmd.AddCommand(c.flightsBrowseCommand())
	cmd.AddCommand(c.flightsLiveCommand())

	return cmd
}

// flightsBrowseCommand creates the "flights browse" subcommand.
func (c *CLI) flightsBrowseCommand() *cobra.Command {
	var (
		method     string
		from       string
		to         string
		depart     string
		inbound    string
		noCache    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search cached prices (quotes, routes, dates, grid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := browseMethods[method]
			if !ok {
				return fmt.Errorf("unknown method %q (quotes, routes, dates, grid)", method)
			}

			client, err := c.newClient(cmd.Context(), noCache)
			if err != nil {
				return err
			}

			b := flights.NewBrowse(client)
			setParams(b, map[string]string{
				"originPlace":         from,
				"destinationPlace":    to,
				"outboundPartialDate": depart,
				"inboundPartialDate":  inbound,
			})

			result, err := b.Fetch(cmd.Context(), m)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(result)
			}

			currency := client.Config().Currency
			switch m {
			case flights.BrowseQuotes:
				printInfo("%d quotes", len(result.Quotes))
				for _, q := range result.Quotes {
					printOffer(q.MinimumPrice, currency, describeQuote(q))
				}
			case flights.BrowseRoutes:
				printInfo("%d routes", len(result.Routes))
				for _, r := range result.Routes {
					printOffer(r.CheapestPrice, currency, describeRoute(r))
				}
			case flights.BrowseDates:
				printInfo("%d outbound dates", len(result.OutboundDates))
				for _, d := range result.OutboundDates {
					printOffer(d.CheapestPrice, currency, d.Date)
				}
				if len(result.InboundDates) > 0 {
					printInfo("%d inbound dates", len(result.InboundDates))
					for _, d := range result.InboundDates {
						printOffer(d.CheapestPrice, currency, d.Date)
					}
				}
			case flights.BrowseGrid:
				printInfo("%d grid cells", len(result.Grid))
				for _, cell := range result.Grid {
					printOffer(cell.MinimumPrice, currency, cell.Date)
				}
			}
			printLink(result.ReferralURL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "quotes", "browse method: quotes, routes, dates or grid")
	cmd.Flags().StringVar(&from, "from", "", "origin place (IATA or place code)")
	cmd.Flags().StringVar(&to, "to", "", "destination place (IATA or place code)")
	cmd.Flags().StringVar(&depart, "depart", "", "outbound date (yyyy-mm or yyyy-mm-dd)")
	cmd.Flags().StringVar(&inbound, "return", "", "inbound date for return trips")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the linked result as JSON")

	return cmd
}

// flightsLiveCommand creates the "flights live" subcommand.
func (c *CLI) flightsLiveCommand() *cobra.Command {
	var (
		from       string
		to         string
		depart     string
		inbound    string
		adults     string
		cabin      string
		cheapest   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Search live prices through a pricing session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), true)
			if err != nil {
				return err
			}

			l := flights.NewLivePricing(client)
			setParams(l, map[string]string{
				"originplace":      from,
				"destinationplace": to,
				"outbounddate":     depart,
				"inbounddate":      inbound,
				"adults":           adults,
				"cabinclass":       cabin,
			})

			result, err := l.Fetch(cmd.Context(), cheapest)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(result)
			}

			currency := client.Config().Currency
			printInfo("%d itineraries", len(result.Itineraries))
			for _, it := range result.Itineraries {
				if len(it.PricingOptions) == 0 {
					continue
				}
				best := it.PricingOptions[0]
				printOffer(best.Price, currency, describeItinerary(it, best))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin place (IATA or place code)")
	cmd.Flags().StringVar(&to, "to", "", "destination place (IATA or place code)")
	cmd.Flags().StringVar(&depart, "depart", "", "outbound date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&inbound, "return", "", "inbound date for return trips")
	cmd.Flags().StringVar(&adults, "adults", "", "number of adult passengers")
	cmd.Flags().StringVar(&cabin, "cabin", "", "cabin class (Economy, PremiumEconomy, Business, First)")
	cmd.Flags().BoolVar(&cheapest, "cheapest", false, "keep only the cheapest option per itinerary")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the linked result as JSON")

	return cmd
}

// paramSetter is the parameter surface shared by all product clients.
type paramSetter interface {
	Set(name, value string)
}

// setParams assigns only the flags the user actually provided, leaving the
// schema defaults in place for the rest.
func setParams(p paramSetter, values map[string]string) {
	for name, value := range values {
		if value != "" {
			p.Set(name, value)
		}
	}
}

func describeQuote(q flights.Quote) string {
	var parts []string
	if leg := q.OutboundLeg; leg != nil {
		parts = append(parts, describeLeg(leg.Origin, leg.Destination, leg.Carrier, leg.Carriers))
	}
	if leg := q.InboundLeg; leg != nil {
		parts = append(parts, describeLeg(leg.Origin, leg.Destination, leg.Carrier, leg.Carriers))
	}
	if q.IsDirect {
		parts = append(parts, "direct")
	}
	return strings.Join(parts, ", ")
}

func describeRoute(r flights.Route) string {
	origin, destination := "?", "?"
	if r.Origin != nil {
		origin = r.Origin.Name
	}
	if r.Destination != nil {
		destination = r.Destination.Name
	}
	return fmt.Sprintf("%s %s %s (%d quotes)", origin, iconArrow, destination, len(r.Quotes))
}

func describeItinerary(it flights.Itinerary, best flights.PricingOption) string {
	var parts []string
	if leg := it.OutboundLeg; leg != nil {
		parts = append(parts, describeLeg(leg.Origin, leg.Destination, leg.Carrier, leg.Carriers))
	}
	if leg := it.InboundLeg; leg != nil {
		parts = append(parts, describeLeg(leg.Origin, leg.Destination, leg.Carrier, leg.Carriers))
	}
	if best.Agent != nil {
		parts = append(parts, "via "+best.Agent.Name)
	}
	return strings.Join(parts, ", ")
}

func describeLeg(origin, destination *flights.Place, carrier *flights.Carrier, carriers []flights.Carrier) string {
	from, to := "?", "?"
	if origin != nil {
		from = origin.Iata
	}
	if destination != nil {
		to = destination.Iata
	}
	route := fmt.Sprintf("%s %s %s", from, iconArrow, to)

	switch {
	case carrier != nil:
		return route + " (" + carrier.Name + ")"
	case len(carriers) > 0:
		names := make([]string, 0, len(carriers))
		for _, c := range carriers {
			names = append(names, c.Name)
		}
		return route + " (" + strings.Join(names, "+") + ")"
	}
	return route
}
