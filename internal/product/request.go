package product

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	apperrors "shopsearch/internal/errors"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// buildURL joins the base url and path and encodes params as the query string.
func buildURL(baseURL, path string, params url.Values) string {
	if len(params) == 0 {
		return baseURL + path
	}
	return baseURL + path + "?" + params.Encode()
}

// executeRequest performs a GET and returns the body of a 2xx response.
// The caller closes the returned body.
func executeRequest(ctx context.Context, doer HTTPDoer, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, apperrors.NewTransportError(reqURL, err)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(reqURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apperrors.NewStatusError(reqURL, resp.StatusCode, string(body))
	}

	return resp.Body, nil
}

// getJSON executes a GET and decodes the JSON body into T.
func getJSON[T any](ctx context.Context, doer HTTPDoer, reqURL string) (T, error) {
	var result T

	body, err := executeRequest(ctx, doer, reqURL)
	if err != nil {
		return result, err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return result, apperrors.NewDecodeError(reqURL, err)
	}

	return result, nil
}
