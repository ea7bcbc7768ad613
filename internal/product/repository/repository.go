package repository

import (
	"context"
	"errors"

	"github.com/contentforge/content-api/internal/product"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidID     = errors.New("invalid product id format")
	ErrDuplicatePath = errors.New("productPath already exists")
)

// Repository is the persistence surface for products.
type Repository interface {
	Insert(ctx context.Context, p *product.Product) (*product.Product, error)
	FindAll(ctx context.Context) ([]*product.Product, error)
	FindByID(ctx context.Context, id string) (*product.Product, error)
	FindByPath(ctx context.Context, path string) (*product.Product, error)
	PathExists(ctx context.Context, path string) (bool, error)
	Replace(ctx context.Context, id string, p *product.Product) (*product.Product, error)
	// DeleteByID removes a product and returns it, so callers can release
	// the files it referenced.
	DeleteByID(ctx context.Context, id string) (*product.Product, error)
}
