package output

import (
	"strings"

	"github.com/vitrine/catalog/pkg/currency"
	"github.com/vitrine/catalog/pkg/money"
)

// FormatAmount renders an amount with the locale's symbol.
func FormatAmount(m money.Money, loc currency.Locale) string { return m.Format(loc, true) }

// ProductURL joins the base URL and the product path.
func ProductURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/product/" + slug
}

// PageTotal sums the amounts listed on the page.
func PageTotal(r *Report) money.Money {
	total := money.Zero()
	for _, p := range r.Products.Data {
		total = total.Add(p.Amount)
	}
	return total
}
