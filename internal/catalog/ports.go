package catalog

import (
	"context"

	"shopsearch/internal/domain"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
	Recommendations(ctx context.Context, query string) ([]domain.Product, error)
}
