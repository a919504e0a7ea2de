package catalog

import (
	"go.uber.org/zap"

	"shopsearch/internal/domain"
)

func NewModule(products []domain.Product, logger *zap.Logger) *Controller {
	repo := NewMemoryRepository(products)
	svc := NewService(repo)
	return NewController(svc, logger)
}
