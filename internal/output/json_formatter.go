package output

import (
	"encoding/json"
)

// JSONFormatter serializes the page as pretty-printed JSON, adding the
// display string of every amount.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonProduct struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Description   string `json:"description"`
	URL           string `json:"url,omitempty"`
}

type jsonPage struct {
	First int           `json:"first"`
	Prev  *int          `json:"prev"`
	Next  *int          `json:"next"`
	Last  int           `json:"last"`
	Pages int           `json:"pages"`
	Items int           `json:"items"`
	Total string        `json:"page_total_display"`
	Data  []jsonProduct `json:"data"`
}

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	pg := r.Products
	out := jsonPage{
		First: pg.First, Prev: pg.Prev, Next: pg.Next, Last: pg.Last,
		Pages: pg.Pages, Items: pg.Items,
		Total: FormatAmount(PageTotal(r), r.Locale),
		Data:  make([]jsonProduct, 0, len(pg.Data)),
	}
	for _, p := range pg.Data {
		jp := jsonProduct{
			ID:            p.ID,
			Name:          p.Name,
			Slug:          p.Slug,
			Amount:        p.Amount.String(),
			AmountDisplay: FormatAmount(p.Amount, r.Locale),
			Description:   p.Description,
		}
		if r.BaseURL != "" {
			jp.URL = ProductURL(r.BaseURL, p.Slug)
		}
		out.Data = append(out.Data, jp)
	}
	return json.MarshalIndent(out, "", "  ")
}
