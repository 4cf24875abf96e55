package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// ConsoleFormatter renders the page as an aligned text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	title := r.Title
	if title == "" {
		title = "Products"
	}
	fmt.Fprintln(&buf, strings.ToUpper(title))
	fmt.Fprintln(&buf, strings.Repeat("=", 32))

	if len(r.Products.Data) == 0 {
		fmt.Fprintln(&buf, "No products found.")
	} else {
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSLUG\tAMOUNT\t")
		for _, p := range r.Products.Data {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Name, p.Slug, FormatAmount(p.Amount, r.Locale))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Page total: %s\n", FormatAmount(PageTotal(r), r.Locale))
	}

	page, pages := r.Products.Page, r.Products.Pages
	if page < 1 {
		page = 1
	}
	if pages < 1 {
		pages = 1
	}
	fmt.Fprintf(&buf, "Showing %d of %d items · Page %d of %d\n", len(r.Products.Data), r.Products.Items, page, pages)
	return buf.Bytes(), nil
}
