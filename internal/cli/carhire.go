package cli

import (
	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/imagestore"
	"github.com/voyagekit/skytravel/pkg/travel/carhire"
)

// carhireCommand creates the car-hire search command.
func (c *CLI) carhireCommand() *cobra.Command {
	var (
		pickup     string
		dropoff    string
		start      string
		end        string
		age        string
		imageDir   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "carhire",
		Short: "Search car-hire prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), true)
			if err != nil {
				return err
			}

			l := carhire.NewLivePrices(client)
			setParams(l, map[string]string{
				"pickupplace":     pickup,
				"dropoffplace":    dropoff,
				"pickupdatetime":  start,
				"dropoffdatetime": end,
				"driverage":       age,
			})
			if imageDir != "" {
				l.SaveImages(imagestore.New(imagestore.WithLogger(c.Logger)), imageDir)
			}

			result, err := l.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(result)
			}

			printInfo("%d offers from %d providers", len(result.Cars), len(result.Websites))
			for _, car := range result.Cars {
				printOffer(car.Price, car.Currency, describeCar(car))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pickup, "pickup", "", "pick-up place (IATA or place code)")
	cmd.Flags().StringVar(&dropoff, "dropoff", "", "drop-off place (IATA or place code)")
	cmd.Flags().StringVar(&start, "start", "", "pick-up time (yyyy-mm-ddThh:mm)")
	cmd.Flags().StringVar(&end, "end", "", "drop-off time (yyyy-mm-ddThh:mm)")
	cmd.Flags().StringVar(&age, "age", "", "driver age")
	cmd.Flags().StringVar(&imageDir, "save-images", "", "archive vehicle images into this directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the linked result as JSON")

	return cmd
}

func describeCar(car carhire.Car) string {
	desc := "?"
	if car.CarClass != nil {
		desc = car.CarClass.Name
	}
	if car.Website != nil {
		desc += " via " + car.Website.Name
	}
	return desc
}
