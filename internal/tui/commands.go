package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shopsearch/internal/domain"
	"shopsearch/internal/search"
)

// Fetcher is the part of the API client the view needs.
type Fetcher interface {
	FetchSuggestions(ctx context.Context, query string) ([]string, error)
	FetchRecommendations(ctx context.Context, query string) []domain.Product
}

type suggestionsMsg struct {
	seq         uint64
	query       string
	suggestions []string
	err         error
}

type recommendationsMsg struct {
	query    string
	products []domain.Product
}

func fetchSuggestions(ctx context.Context, f Fetcher, req *search.SuggestionRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	seq, query := req.Seq, req.Query
	return func() tea.Msg {
		suggestions, err := f.FetchSuggestions(ctx, query)
		return suggestionsMsg{seq: seq, query: query, suggestions: suggestions, err: err}
	}
}

func fetchRecommendations(ctx context.Context, f Fetcher, query string) tea.Cmd {
	return func() tea.Msg {
		return recommendationsMsg{
			query:    query,
			products: f.FetchRecommendations(ctx, query),
		}
	}
}
