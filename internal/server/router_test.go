package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopsearch/internal/catalog"
	"shopsearch/internal/domain"
)

func newTestRouter(t *testing.T) *httptest.Server {
	products := []domain.Product{
		{ID: "1", Name: "Chamomile Tea", Description: "Calming", Price: 5, Effects: domain.StringList{"relaxation"}},
		{ID: "2", Name: "Cold Brew", Description: "Strong coffee", Price: 4, Effects: domain.StringList{"energy boost"}},
	}
	srv := httptest.NewServer(NewRouter(catalog.NewModule(products, zap.NewNop()), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestRouter_Health(t *testing.T) {
	srv := newTestRouter(t)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Recommendations(t *testing.T) {
	srv := newTestRouter(t)

	var products []domain.Product
	resp := getJSON(t, srv.URL+"/recommendations?query=tea", &products)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Len(t, products, 1)
	assert.Equal(t, "Chamomile Tea", products[0].Name)
}

func TestRouter_Suggestions(t *testing.T) {
	srv := newTestRouter(t)

	var suggestions []string
	resp := getJSON(t, srv.URL+"/suggestions?query=cold", &suggestions)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Cold Brew", suggestions[0])
	assert.LessOrEqual(t, len(suggestions), catalog.MaxSuggestions)
}

func TestRouter_MissingQuery(t *testing.T) {
	srv := newTestRouter(t)

	for _, path := range []string{"/suggestions", "/recommendations?query=%20"} {
		var body map[string]any
		resp := getJSON(t, srv.URL+path, &body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "VALIDATION_ERROR", body["error"], path)
	}
}

func TestRouter_Products(t *testing.T) {
	srv := newTestRouter(t)

	var products []domain.Product
	getJSON(t, srv.URL+"/products", &products)

	assert.Len(t, products, 2)
}

func TestRouter_CORS(t *testing.T) {
	srv := newTestRouter(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestRouter(t)

	resp, err := http.Get(srv.URL + "/cart")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv := New(0, http.NotFoundHandler(), zap.NewNop())
	assert.Equal(t, ":0", srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
