package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/internal/output"
	"github.com/vitrine/catalog/pkg/money"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List, create, show and delete products",
	}
	cmd.AddCommand(newProductsListCmd(a), newProductsCreateCmd(a), newProductsShowCmd(a), newProductsDeleteCmd(a))
	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	var (
		q      domain.ListQuery
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkPerPage(q.PerPage); err != nil {
				return err
			}
			page, err := a.service(cmd).ListProducts(q)
			if err != nil {
				return err
			}
			r := &output.Report{
				Title:    "Products",
				Products: page,
				Locale:   a.currency(),
				BaseURL:  a.cfg.BaseURL,
			}
			return output.GenerateReport(cmd.OutOrStdout(), r, format)
		},
	}
	addListFlags(cmd, &q)
	cmd.Flags().StringVarP(&format, "output", "o", "console", "Output format (console, csv, html, json)")
	return cmd
}

func newProductsCreateCmd(a *app) *cobra.Command {
	var (
		name, amount, description string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Long: `Create a product.

--amount is read like the masked amount field: digits only, the last two
are the cents ("R$ 89,90", "89,90" and "8990" are all 89.90).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.service(cmd).CreateProduct(domain.ProductDraft{
				Name:        name,
				Amount:      money.FromMaskedInput(amount),
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, output.ProductURL(a.cfg.BaseURL, p.Slug), output.FormatAmount(p.Amount, a.currency()))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Product name (3-50 characters)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount as typed in the masked field")
	cmd.Flags().StringVar(&description, "description", "", "Description (10-200 characters)")
	return cmd
}

func newProductsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show the detail page of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.service(cmd).ProductBySlug(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Name)
			fmt.Fprintln(out, output.FormatAmount(p.Amount, a.currency()))
			fmt.Fprintln(out, p.Description)
			fmt.Fprintln(out, output.ProductURL(a.cfg.BaseURL, p.Slug))
			return nil
		},
	}
}

func newProductsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.service(cmd).DeleteProduct(args[0])
		},
	}
}
