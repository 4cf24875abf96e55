package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per product on the page.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Name", "Slug", "Amount", "AmountDisplay", "Description", "URL"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range r.Products.Data {
		row := []string{
			p.ID,
			p.Name,
			p.Slug,
			p.Amount.String(),
			FormatAmount(p.Amount, r.Locale),
			p.Description,
			ProductURL(r.BaseURL, p.Slug),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
