package cli

import (
	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/travel/hotels"
)

// hotelsCommand creates the hotel price search command.
func (c *CLI) hotelsCommand() *cobra.Command {
	var (
		checkin    string
		checkout   string
		adults     string
		rooms      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "hotels <entity-id>",
		Short: "Search hotel prices for a place or property entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), true)
			if err != nil {
				return err
			}

			p := hotels.NewPrices(client)
			setParams(p, map[string]string{
				"checkin_date":  checkin,
				"checkout_date": checkout,
				"adults":        adults,
				"rooms":         rooms,
			})

			result, err := p.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(result)
			}

			currency := client.Config().Currency
			printInfo("%d hotels", len(result.Hotels))
			for _, hotel := range result.Hotels {
				name := hotel.Name
				if hotel.Stars != "" {
					name += " (" + hotel.Stars + "*)"
				}
				printKeyValue("hotel", name)
				for _, offer := range hotel.Offers {
					desc := offer.RoomType
					if offer.Partner != nil {
						desc += " via " + offer.Partner.Name
					}
					printOffer(offer.Price, currency, desc)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkin, "checkin", "", "check-in date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&checkout, "checkout", "", "check-out date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&adults, "adults", "", "number of adult guests")
	cmd.Flags().StringVar(&rooms, "rooms", "", "number of rooms")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the linked result as JSON")

	return cmd
}
