package domain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vitrine/catalog/pkg/money"
	"github.com/vitrine/catalog/pkg/slug"
)

// Tag groups videos under a title
type Tag struct {
	ID             string `yaml:"id" json:"id"`
	Title          string `yaml:"title" json:"title"`
	Slug           string `yaml:"slug" json:"slug"`
	AmountOfVideos int    `yaml:"amount_of_videos" json:"amountOfVideos"`
}

// Product is a priced catalog entry reachable at /product/{slug}
type Product struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Slug        string      `yaml:"slug" json:"slug"`
	Amount      money.Money `yaml:"amount" json:"amount"`
	Description string      `yaml:"description" json:"description"`
}

// Catalog is the persisted set of tags and products
type Catalog struct {
	Tags     []Tag     `yaml:"tags" json:"tags"`
	Products []Product `yaml:"products" json:"products"`
}

// TagDraft is the input of the create-tag form
type TagDraft struct {
	Title string
}

// ProductDraft is the input of the create-product form
type ProductDraft struct {
	Name        string
	Amount      money.Money
	Description string
}

// NewTag validates the draft and builds a tag with a fresh ID and a slug
// derived from the trimmed title.
func NewTag(d TagDraft) (Tag, error) {
	if err := d.Validate(); err != nil {
		return Tag{}, err
	}
	title := strings.TrimSpace(d.Title)
	return Tag{
		ID:    uuid.NewString(),
		Title: title,
		Slug:  slug.Generate(title),
	}, nil
}

// NewProduct validates the draft and builds a product with a fresh ID and a
// slug derived from the trimmed name.
func NewProduct(d ProductDraft) (Product, error) {
	if err := d.Validate(); err != nil {
		return Product{}, err
	}
	name := strings.TrimSpace(d.Name)
	return Product{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug.Generate(name),
		Amount:      d.Amount,
		Description: strings.TrimSpace(d.Description),
	}, nil
}
