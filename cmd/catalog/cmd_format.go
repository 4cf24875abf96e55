package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitrine/catalog/pkg/currency"
	"github.com/vitrine/catalog/pkg/money"
	"github.com/vitrine/catalog/pkg/slug"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <amount>",
		Short: "Format an amount for display",
		Example: `  catalog format 1234.5            # R$1.234,50
  catalog format --locale us 99.9  # $99.90
  catalog format -- -1234.5        # - R$1.234,50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), currency.Format(args[0], a.cfg.WithSymbol, a.currency()))
			return nil
		},
	}
}

func newMaskCmd(a *app) *cobra.Command {
	var showBuffer bool
	cmd := &cobra.Command{
		Use:   "mask <raw input>",
		Short: "Apply the amount input mask to raw keystrokes",
		Long: `Apply the amount input mask to the raw content of a text field.

Every non-digit is dropped and the last two digits become the cents, so
negative amounts cannot be entered through the mask.`,
		Example: `  catalog mask 123456        # R$1.234,56
  catalog mask --buffer 123  # R$1,23 (1.23)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := currency.ParseInput(args[0], a.cfg.WithSymbol, a.currency())
			if showBuffer {
				out = fmt.Sprintf("%s (%s)", out, money.FromMaskedInput(args[0]).String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBuffer, "buffer", false, "Also print the amount stored by the form")
	return cmd
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Generate the URL slug for a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slug.Generate(strings.Join(args, " ")))
			return nil
		},
	}
}
