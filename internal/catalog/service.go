// Package catalog implements listing, creation and deletion of tags and
// products on top of a Store.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vitrine/catalog/internal/domain"
	"github.com/vitrine/catalog/internal/notify"
	"github.com/vitrine/catalog/internal/pagination"
)

var (
	// ErrNotFound is returned when no entry matches an id or slug.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug is returned when a new entry would reuse a slug.
	ErrDuplicateSlug = errors.New("slug already in use")
)

// Store loads and saves the whole catalog
type Store interface {
	Load() (*domain.Catalog, error)
	Save(*domain.Catalog) error
}

// Service runs catalog operations
type Service struct {
	store    Store
	notifier *notify.Notifier
	logger   *zap.Logger
	perPage  int
}

// NewService creates a service; notifier may be nil.
func NewService(store Store, notifier *notify.Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   zap.NewNop(),
		perPage:  pagination.DefaultPerPage,
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (s *Service) SetLogger(l *zap.Logger) {
	if l == nil {
		s.logger = zap.NewNop()
		return
	}
	s.logger = l
}

// SetDefaultPerPage sets the page size used when a query has none.
func (s *Service) SetDefaultPerPage(n int) {
	if n > 0 {
		s.perPage = n
	}
}

// ListTags returns one page of tags whose title contains the filter
func (s *Service) ListTags(q domain.ListQuery) (domain.Page[domain.Tag], error) {
	c, err := s.store.Load()
	if err != nil {
		return domain.Page[domain.Tag]{}, err
	}
	matched := filter(c.Tags, q.Filter, func(t domain.Tag) string { return t.Title })
	page := paginate(matched, s.withDefaults(q))
	s.logger.Debug("listed tags", zap.String("filter", q.Filter), zap.Int("page", page.Page), zap.Int("items", page.Items))
	return page, nil
}

// CreateTag validates the draft and stores a new tag
func (s *Service) CreateTag(d domain.TagDraft) (domain.Tag, error) {
	tag, err := domain.NewTag(d)
	if err != nil {
		return domain.Tag{}, err
	}
	c, err := s.store.Load()
	if err != nil {
		return domain.Tag{}, err
	}
	for _, t := range c.Tags {
		if t.Slug == tag.Slug {
			return domain.Tag{}, fmt.Errorf("%w: %q", ErrDuplicateSlug, tag.Slug)
		}
	}
	c.Tags = append(c.Tags, tag)
	if err := s.store.Save(c); err != nil {
		return domain.Tag{}, err
	}
	s.logger.Info("created tag", zap.String("id", tag.ID), zap.String("slug", tag.Slug))
	s.notifier.Success("")
	return tag, nil
}

// DeleteTag removes the tag with the given id
func (s *Service) DeleteTag(id string) error {
	c, err := s.store.Load()
	if err != nil {
		return err
	}
	kept, ok := without(c.Tags, func(t domain.Tag) bool { return t.ID == id })
	if !ok {
		return fmt.Errorf("tag %q: %w", id, ErrNotFound)
	}
	c.Tags = kept
	if err := s.store.Save(c); err != nil {
		return err
	}
	s.logger.Info("deleted tag", zap.String("id", id))
	s.notifier.Success("")
	return nil
}

// ListProducts returns one page of products whose name contains the filter
func (s *Service) ListProducts(q domain.ListQuery) (domain.Page[domain.Product], error) {
	c, err := s.store.Load()
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	matched := filter(c.Products, q.Filter, func(p domain.Product) string { return p.Name })
	page := paginate(matched, s.withDefaults(q))
	s.logger.Debug("listed products", zap.String("filter", q.Filter), zap.Int("page", page.Page), zap.Int("items", page.Items))
	return page, nil
}

// CreateProduct validates the draft and stores a new product
func (s *Service) CreateProduct(d domain.ProductDraft) (domain.Product, error) {
	p, err := domain.NewProduct(d)
	if err != nil {
		return domain.Product{}, err
	}
	c, err := s.store.Load()
	if err != nil {
		return domain.Product{}, err
	}
	for _, existing := range c.Products {
		if existing.Slug == p.Slug {
			return domain.Product{}, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
	}
	c.Products = append(c.Products, p)
	if err := s.store.Save(c); err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("created product", zap.String("id", p.ID), zap.String("slug", p.Slug), zap.String("amount", p.Amount.String()))
	s.notifier.Success("")
	return p, nil
}

// DeleteProduct removes the product with the given id
func (s *Service) DeleteProduct(id string) error {
	c, err := s.store.Load()
	if err != nil {
		return err
	}
	kept, ok := without(c.Products, func(p domain.Product) bool { return p.ID == id })
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	c.Products = kept
	if err := s.store.Save(c); err != nil {
		return err
	}
	s.logger.Info("deleted product", zap.String("id", id))
	s.notifier.Success("")
	return nil
}

// ProductBySlug finds the product published at /product/{slug}
func (s *Service) ProductBySlug(slug string) (domain.Product, error) {
	c, err := s.store.Load()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range c.Products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", slug, ErrNotFound)
}

func (s *Service) withDefaults(q domain.ListQuery) domain.ListQuery {
	if q.PerPage <= 0 {
		q.PerPage = s.perPage
	}
	return q
}

func filter[T any](items []T, term string, field func(T) string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	var out []T
	for _, it := range items {
		if strings.Contains(strings.ToLower(field(it)), term) {
			out = append(out, it)
		}
	}
	return out
}

func without[T any](items []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if match(it) {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}

func paginate[T any](items []T, q domain.ListQuery) domain.Page[T] {
	st := pagination.New(len(items), q.PerPage, q.Page)
	start, end := st.Bounds()

	page := domain.Page[T]{
		First:   1,
		Last:    st.Pages(),
		Pages:   st.Pages(),
		Items:   st.Items,
		Data:    append([]T{}, items[start:end]...),
		Page:    st.Page,
		PerPage: st.PerPage,
	}
	if !st.IsFirst() {
		prev := st.Page - 1
		page.Prev = &prev
	}
	if !st.IsLast() {
		next := st.Page + 1
		page.Next = &next
	}
	return page
}
