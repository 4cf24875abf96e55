package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/pkg/money"
)

// HTMLFormatter produces a standalone HTML page with the product table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/products.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("products").Funcs(template.FuncMap{
	"url": ProductURL,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	title := r.Title
	if title == "" {
		title = "Products"
	}
	amount := func(m money.Money) string { return FormatAmount(m, r.Locale) }
	data := struct {
		Title    string
		BaseURL  string
		Products []domain.Product
		Page     domain.Page[domain.Product]
		Total    string
		Amount   func(money.Money) string
	}{title, r.BaseURL, r.Products.Data, r.Products, amount(PageTotal(r)), amount}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
