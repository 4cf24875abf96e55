package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine/catalog/internal/catalog"
	"github.com/vitrine/catalog/internal/config"
	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/internal/store"
	"github.com/vitrine/catalog/pkg/currency"
	"github.com/vitrine/catalog/pkg/money"
)

// copyCatalog gives each test its own writable copy of the fixture catalog.
func copyCatalog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../testdata/catalog.yaml")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newService(t *testing.T) (*catalog.Service, *config.Config) {
	t.Helper()
	cfg, err := config.NewLoader().LoadFromFile("../testdata/config.yaml")
	require.NoError(t, err)
	svc := catalog.NewService(store.NewFileStore(copyCatalog(t)), nil)
	svc.SetDefaultPerPage(cfg.PerPage)
	return svc, cfg
}

func TestFixtureCatalog(t *testing.T) {
	svc, _ := newService(t)

	page, err := svc.ListProducts(domain.ListQuery{Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, 12, page.Items)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Data, 10)

	for _, p := range page.Data {
		assert.True(t, p.Amount.IsPositive(), p.Name)
		assert.NoError(t, domain.ProductDraft{Name: p.Name, Amount: p.Amount, Description: p.Description}.Validate(), p.Name)
	}

	tags, err := svc.ListTags(domain.ListQuery{Filter: "dados"})
	assert.NoError(t, err)
	require.Len(t, tags.Data, 1)
	assert.Equal(t, 5, tags.Data[0].AmountOfVideos)
}

func TestPageSizeChangeKeepsPageInRange(t *testing.T) {
	svc, _ := newService(t)

	page, err := svc.ListProducts(domain.ListQuery{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	page, err = svc.ListProducts(domain.ListQuery{Page: 2, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Data, 12)
}

func TestCreateFromMaskedInputThenShow(t *testing.T) {
	svc, cfg := newService(t)

	// Each keystroke is appended to the previous render and re-masked.
	display := ""
	for _, k := range "249900" {
		display = currency.ParseInput(display+string(k), false, cfg.Currency())
	}
	require.Equal(t, "2.499,00", display)

	p, err := svc.CreateProduct(domain.ProductDraft{
		Name:        "Notebook Ultrafino",
		Amount:      money.FromMaskedInput(display),
		Description: "Notebook de 14 polegadas com 16GB de RAM",
	})
	require.NoError(t, err)

	got, err := svc.ProductBySlug("notebook-ultrafino")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "R$2.499,00", got.Amount.Format(cfg.Currency(), true))

	page, err := svc.ListProducts(domain.ListQuery{Filter: "notebook"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Items) // the fixture already has a notebook stand
}
