package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when no catalog entry matches a slug.
var ErrProductNotFound = errors.New("product not found")

// Dimensions describes the physical size of a weighing scale.
type Dimensions struct {
	Height string `json:"height"`
	Width  string `json:"width"`
	Length string `json:"length"`
}

// Specifications holds the technical specification sheet of a product.
type Specifications struct {
	MaxCapacity      string     `json:"maxCapacity"`
	MinWeight        string     `json:"minWeight"`
	Accuracy         string     `json:"accuracy"`
	WeighingRange    string     `json:"weighingRange"`
	MaxLoadTolerance string     `json:"maxLoadTolerance"`
	Material         string     `json:"material"`
	Dimensions       Dimensions `json:"dimensions"`
}

// ProductImages groups the main image and the gallery URLs.
type ProductImages struct {
	Main    string   `json:"main"`
	Gallery []string `json:"gallery"`
}

// Product is a catalog entry. The catalog is a fixed in-memory list;
// products are never created or modified at runtime.
type Product struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	Category         string         `json:"category"`
	ShortDescription string         `json:"shortDescription"`
	FullDescription  string         `json:"fullDescription"`
	Features         []string       `json:"features"`
	Specifications   Specifications `json:"specifications"`
	Images           ProductImages  `json:"images"`
	Applications     []string       `json:"applications"`
}

// ProductRepository reads the static catalog.
type ProductRepository interface {
	ListAll(ctx context.Context) []Product
	FindBySlug(ctx context.Context, slug string) (*Product, bool)
	Categories(ctx context.Context) []string
}

// ProductUsecase defines the interface for catalog reads
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, slug string) (*Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
