package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"shopsearch/internal/catalog"
	"shopsearch/internal/domain"
	"shopsearch/internal/server"
)

// NewCatalogServer serves the fixture catalog API over products, or over the
// bundled sample catalog when products is nil.
func NewCatalogServer(t *testing.T, products []domain.Product) *httptest.Server {
	t.Helper()

	if products == nil {
		var err error
		products, err = catalog.LoadProducts("")
		if err != nil {
			t.Fatalf("failed to load sample catalog: %v", err)
		}
	}

	logger := zap.NewNop()
	srv := httptest.NewServer(server.NewRouter(catalog.NewModule(products, logger), logger))
	t.Cleanup(srv.Close)

	return srv
}
