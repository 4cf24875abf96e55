package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/internal/notify"
	"github.com/vitrine/catalog/internal/store"
	"github.com/vitrine/catalog/pkg/money"
)

type memoryStore struct {
	c       domain.Catalog
	saves   int
	loadErr error
}

func (m *memoryStore) Load() (*domain.Catalog, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	c := domain.Catalog{
		Tags:     append([]domain.Tag(nil), m.c.Tags...),
		Products: append([]domain.Product(nil), m.c.Products...),
	}
	return &c, nil
}

func (m *memoryStore) Save(c *domain.Catalog) error {
	m.c = *c
	m.saves++
	return nil
}

func seededProducts(n int) *memoryStore {
	m := &memoryStore{}
	for i := 1; i <= n; i++ {
		m.c.Products = append(m.c.Products, domain.Product{
			ID:     fmt.Sprintf("p%d", i),
			Name:   fmt.Sprintf("Produto %02d", i),
			Slug:   fmt.Sprintf("produto-%02d", i),
			Amount: money.FromCents(int64(i) * 1000),
		})
	}
	return m
}

func TestListProductsPagination(t *testing.T) {
	svc := NewService(seededProducts(25), nil)

	page, err := svc.ListProducts(domain.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Items)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 1, page.First)
	assert.Equal(t, 3, page.Last)
	assert.Nil(t, page.Prev)
	require.NotNil(t, page.Next)
	assert.Equal(t, 2, *page.Next)
	assert.Len(t, page.Data, 10)

	page, err = svc.ListProducts(domain.ListQuery{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Nil(t, page.Next)
	require.NotNil(t, page.Prev)
	assert.Equal(t, 2, *page.Prev)
	assert.Equal(t, "p21", page.Data[0].ID)
}

func TestListProductsClampsPage(t *testing.T) {
	svc := NewService(seededProducts(25), nil)
	page, err := svc.ListProducts(domain.ListQuery{Page: 9, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Data, 5)
}

func TestListProductsFilter(t *testing.T) {
	svc := NewService(seededProducts(25), nil)
	page, err := svc.ListProducts(domain.ListQuery{Filter: " produto 1", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, page.Items) // 10..19
	assert.Equal(t, "p10", page.Data[0].ID)

	page, err = svc.ListProducts(domain.ListQuery{Filter: "nada", Page: 1})
	require.NoError(t, err)
	assert.Zero(t, page.Items)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Pages)
}

func TestCreateAndDeleteProduct(t *testing.T) {
	m := &memoryStore{}
	var out bytes.Buffer
	svc := NewService(m, notify.New(&out, notify.DefaultOptions, nil))

	p, err := svc.CreateProduct(domain.ProductDraft{
		Name:        "Mouse Óptico",
		Amount:      money.FromMaskedInput("R$ 89,90"),
		Description: "Mouse óptico sem fio",
	})
	require.NoError(t, err)
	assert.Equal(t, "mouse-optico", p.Slug)
	assert.Equal(t, "89.90", p.Amount.String())
	assert.Equal(t, 1, m.saves)
	assert.Equal(t, "✔ Sucesso\n", out.String())

	got, err := svc.ProductBySlug("mouse-optico")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.CreateProduct(domain.ProductDraft{Name: "mouse optico", Amount: money.NewMoney(1), Description: "Outro mouse igual"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	require.NoError(t, svc.DeleteProduct(p.ID))
	assert.Empty(t, m.c.Products)
	assert.ErrorIs(t, svc.DeleteProduct(p.ID), ErrNotFound)

	_, err = svc.ProductBySlug("mouse-optico")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductInvalidDoesNotSave(t *testing.T) {
	m := &memoryStore{}
	svc := NewService(m, nil)
	_, err := svc.CreateProduct(domain.ProductDraft{Name: "ab"})
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Zero(t, m.saves)
}

func TestTags(t *testing.T) {
	m := &memoryStore{}
	svc := NewService(m, nil)

	tag, err := svc.CreateTag(domain.TagDraft{Title: "Golang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Slug)

	_, err = svc.CreateTag(domain.TagDraft{Title: "GOLANG"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	_, err = svc.CreateTag(domain.TagDraft{Title: "Go"})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	page, err := svc.ListTags(domain.ListQuery{Filter: "lang"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, tag.ID, page.Data[0].ID)

	require.NoError(t, svc.DeleteTag(tag.ID))
	assert.ErrorIs(t, svc.DeleteTag(tag.ID), ErrNotFound)
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(&memoryStore{loadErr: boom}, nil)

	_, err := svc.ListProducts(domain.ListQuery{})
	assert.ErrorIs(t, err, boom)
	_, err = svc.ListTags(domain.ListQuery{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.DeleteProduct("x"), boom)
}

func TestServiceWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	svc := NewService(store.NewFileStore(path), nil)
	svc.SetLogger(nil)
	svc.SetDefaultPerPage(20)

	for i := 0; i < 21; i++ {
		_, err := svc.CreateTag(domain.TagDraft{Title: fmt.Sprintf("Tag número %d", i)})
		require.NoError(t, err)
	}

	reopened := NewService(store.NewFileStore(path), nil)
	reopened.SetDefaultPerPage(20)
	page, err := reopened.ListTags(domain.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 21, page.Items)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, "tag-numero-20", page.Data[0].Slug)
}
