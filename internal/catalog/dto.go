package catalog

import apperrors "shopsearch/internal/errors"

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}
