package product

import (
	"net/http"

	"go.uber.org/zap"

	"shopsearch/internal/config"
)

// NewModule builds the API client. The http.Client has no timeout; requests
// run until the transport gives up or the caller's context is cancelled.
func NewModule(cfg config.APIConfig, logger *zap.Logger) *Client {
	return NewClient(cfg.BaseURL, &http.Client{}, logger.Named("api"))
}
