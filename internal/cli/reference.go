package cli

import (
	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/travel/reference"
)

// referenceCommand creates the localisation reference command group.
func (c *CLI) referenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Look up supported currencies, locales and markets",
	}

	cmd.AddCommand(c.referenceCurrenciesCommand())
	cmd.AddCommand(c.referenceLocalesCommand())
	cmd.AddCommand(c.referenceMarketsCommand())

	return cmd
}

// referenceCurrenciesCommand creates the "reference currencies" subcommand.
func (c *CLI) referenceCurrenciesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), false)
			if err != nil {
				return err
			}

			got, err := reference.NewService(client).Currencies(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, currency := range got {
				printKeyValue(currency.Code, currency.Symbol)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

// referenceLocalesCommand creates the "reference locales" subcommand.
func (c *CLI) referenceLocalesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the supported locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), false)
			if err != nil {
				return err
			}

			got, err := reference.NewService(client).Locales(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, locale := range got {
				printKeyValue(locale.Code, locale.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

// referenceMarketsCommand creates the "reference markets" subcommand.
func (c *CLI) referenceMarketsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List the market countries for the configured locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd.Context(), false)
			if err != nil {
				return err
			}

			got, err := reference.NewService(client).Markets(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(got)
			}
			for _, market := range got {
				printKeyValue(market.Code, market.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}
