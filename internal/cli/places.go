package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/travel"
	"github.com/voyagekit/skytravel/pkg/travel/places"
)

// placesCommand creates the geo lookup command group.
func (c *CLI) placesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Look up places and geo data",
	}

	cmd.AddCommand(c.placesSearchCommand())
	cmd.AddCommand(c.placesInfoCommand())
	cmd.AddCommand(c.placesHotelsCommand())
	cmd.AddCommand(c.placesCatalogueCommand())

	return cmd
}

// placesSearchCommand creates the "places search" subcommand.
func (c *CLI) placesSearchCommand() *cobra.Command {
	var noCache, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Autosuggest places from free text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), noCache)
			if err != nil {
				return err
			}

			got, err := places.NewService(client).Autosuggest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, s := range got {
				printKeyValue(s.PlaceID, s.PlaceName+", "+s.CountryName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

// placesInfoCommand creates the "places info" subcommand.
func (c *CLI) placesInfoCommand() *cobra.Command {
	var noCache, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info <place-id>",
		Short: "Look up the details of a known place id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), noCache)
			if err != nil {
				return err
			}

			got, err := places.NewService(client).Information(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, s := range got {
				printKeyValue("place", s.PlaceName)
				printKeyValue("id", s.PlaceID)
				printKeyValue("country", s.CountryName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

// placesHotelsCommand creates the "places hotels" subcommand.
func (c *CLI) placesHotelsCommand() *cobra.Command {
	var noCache, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hotels <query>",
		Short: "Autosuggest hotel entities from free text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), noCache)
			if err != nil {
				return err
			}

			got, err := places.NewService(client).Hotels(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, s := range got {
				printKeyValue(s.ID, s.PlaceName+" ("+s.GeoType+")")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

// placesCatalogueCommand creates the "places catalogue" subcommand.
func (c *CLI) placesCatalogueCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Fetch the full geo hierarchy (whitelisted keys only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), false)
			if err != nil {
				return err
			}

			got, err := places.NewService(client).Catalogue(cmd.Context())
			if errors.Is(err, travel.ErrRestrictedAccess) {
				printWarning("The geo catalogue is limited to whitelisted API keys")
				return err
			}
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, continent := range got {
				printKeyValue(continent.Name, "")
				for _, country := range continent.Countries {
					printDetail("%s (%d cities)", country.Name, len(country.Cities))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}
