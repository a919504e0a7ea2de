package catalog

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "shopsearch/internal/errors"
)

type Controller struct {
	service CatalogService
	logger  *zap.Logger
}

func NewController(service CatalogService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (c *Controller) HandleProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	products, err := c.service.Products(r.Context())
	if err != nil {
		logger.Error("listing products failed", zap.Error(err))
		c.writeInternalError(w, traceID)
		return
	}

	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	query, err := c.queryParam(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	suggestions, err := c.service.Suggestions(r.Context(), query)
	if err != nil {
		logger.Error("suggestions failed", zap.String("query", query), zap.Error(err))
		c.writeInternalError(w, traceID)
		return
	}

	logger.Debug("suggestions served", zap.String("query", query), zap.Int("count", len(suggestions)))
	c.writeJSON(w, http.StatusOK, suggestions)
}

func (c *Controller) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	query, err := c.queryParam(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	products, err := c.service.Recommendations(r.Context(), query)
	if err != nil {
		logger.Error("recommendations failed", zap.String("query", query), zap.Error(err))
		c.writeInternalError(w, traceID)
		return
	}

	if len(products) == 0 {
		logger.Warn("no recommendations found", zap.String("query", query))
	} else {
		logger.Info("recommendations served", zap.String("query", query), zap.Int("count", len(products)))
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) queryParam(r *http.Request) (string, error) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		msg := "query is required"
		return "", apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "query",
			Message: "query must not be blank",
		})
	}
	return query, nil
}

func (c *Controller) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter, traceID string) {
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		TraceID: traceID,
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
