package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopsearch/internal/domain"
	"shopsearch/internal/search"
)

type mockFetcher struct {
	SuggestionsFunc     func(query string) ([]string, error)
	RecommendationsFunc func(query string) []domain.Product

	mu                    sync.Mutex
	suggestionQueries     []string
	recommendationQueries []string
}

func (f *mockFetcher) FetchSuggestions(_ context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.suggestionQueries = append(f.suggestionQueries, query)
	f.mu.Unlock()
	if f.SuggestionsFunc == nil {
		return []string{}, nil
	}
	return f.SuggestionsFunc(query)
}

func (f *mockFetcher) FetchRecommendations(_ context.Context, query string) []domain.Product {
	f.mu.Lock()
	f.recommendationQueries = append(f.recommendationQueries, query)
	f.mu.Unlock()
	if f.RecommendationsFunc == nil {
		return []domain.Product{}
	}
	return f.RecommendationsFunc(query)
}

func newTestModel(f Fetcher, suggestions bool) Model {
	m := New(context.Background(), f, search.Options{Suggestions: suggestions}, zap.NewNop())
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return m
}

// run executes cmd and any commands it batches, returning their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and returns the follow-up messages without applying them.
func send(m Model, msg tea.Msg) (Model, []tea.Msg) {
	next, cmd := m.Update(msg)
	return next.(Model), run(cmd)
}

// deliver applies fetch responses back to the model.
func deliver(m Model, msgs []tea.Msg) Model {
	for _, msg := range msgs {
		switch msg.(type) {
		case suggestionsMsg, recommendationsMsg:
			next, _ := m.Update(msg)
			m = next.(Model)
		}
	}
	return m
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		var msgs []tea.Msg
		m, msgs = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = deliver(m, msgs)
	}
	return m
}

func TestModel_SuggestionScenario(t *testing.T) {
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			return []string{"shoes", "shirt"}, nil
		},
	}
	m := newTestModel(fetcher, true)

	m = typeText(m, "sh")

	assert.Equal(t, []string{"sh"}, fetcher.suggestionQueries)
	assert.Equal(t, []string{"shoes", "shirt"}, m.widget.Suggestions())
	view := m.View()
	assert.Contains(t, view, "shoes")
	assert.Contains(t, view, "shirt")

	m, _ = send(m, key(tea.KeyDown))
	m, _ = send(m, key(tea.KeyDown))
	m, msgs := send(m, key(tea.KeyEnter))

	assert.Equal(t, "shirt", m.input.Value())
	assert.Equal(t, "shirt", m.widget.Query())
	assert.False(t, m.widget.SuggestionsShown())
	assert.True(t, m.widget.Loading())
	assert.NotContains(t, m.View(), "shoes")

	m = deliver(m, msgs)
	assert.Equal(t, []string{"shirt"}, fetcher.recommendationQueries)
	assert.False(t, m.widget.Loading())
}

func TestModel_SingleCharacterDoesNotFetch(t *testing.T) {
	fetcher := &mockFetcher{}
	m := newTestModel(fetcher, true)

	m = typeText(m, "s")

	assert.Empty(t, fetcher.suggestionQueries)
	assert.Empty(t, m.widget.Suggestions())
}

func TestModel_BackspaceBelowThresholdClearsSuggestions(t *testing.T) {
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			return []string{"shoes"}, nil
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "sh")
	require.NotEmpty(t, m.widget.Suggestions())

	m, _ = send(m, key(tea.KeyBackspace))

	assert.Equal(t, "s", m.input.Value())
	assert.Empty(t, m.widget.Suggestions())
}

func TestModel_StaleSuggestionsDiscarded(t *testing.T) {
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			return []string{query + "-result"}, nil
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "s")

	m, older := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m, newer := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})

	m = deliver(m, newer)
	m = deliver(m, older)

	assert.Equal(t, []string{"sho-result"}, m.widget.Suggestions())
	assert.NotContains(t, m.View(), "sh-result")
}

func TestModel_SuggestionFailureKeepsList(t *testing.T) {
	fail := false
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			if fail {
				return nil, errors.New("connection refused")
			}
			return []string{"shoes"}, nil
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "sh")

	fail = true
	m = typeText(m, "o")

	assert.Equal(t, []string{"sh", "sho"}, fetcher.suggestionQueries)
	assert.Equal(t, []string{"shoes"}, m.widget.Suggestions())
}

func TestModel_BlankSearchIsIgnored(t *testing.T) {
	fetcher := &mockFetcher{}
	m := newTestModel(fetcher, true)
	m = typeText(m, "   ")

	m, msgs := send(m, key(tea.KeyEnter))

	assert.Empty(t, msgs)
	assert.Empty(t, fetcher.recommendationQueries)
	assert.False(t, m.widget.Loading())
}

func TestModel_SearchRendersCards(t *testing.T) {
	fetcher := &mockFetcher{
		RecommendationsFunc: func(query string) []domain.Product {
			return []domain.Product{
				{ID: "1", Name: "Calm Tea", Description: "Chamomile", Price: 4.5},
				{ID: "2", Name: "Sleep Drops", Description: "Melatonin", Price: 12},
				{ID: "3", Name: "Focus Gum", Description: "Caffeine", Price: 2.25},
			}
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "calm")

	m, msgs := send(m, key(tea.KeyEnter))

	loadingView := m.View()
	assert.Contains(t, loadingView, "Searching...")
	assert.NotContains(t, loadingView, search.NoResultsMessage)

	m = deliver(m, msgs)
	view := m.View()

	assert.Equal(t, []string{"calm"}, fetcher.recommendationQueries)
	assert.Equal(t, 3, strings.Count(view, "Price: "))
	assert.Contains(t, view, "Price: $4.50")
	assert.Contains(t, view, "Price: $2.25")
	assert.NotContains(t, view, "Searching...")
	assert.NotContains(t, view, search.NoResultsMessage)
}

func TestModel_EmptyResultsShowMessage(t *testing.T) {
	fetcher := &mockFetcher{}
	m := newTestModel(fetcher, false)
	m = typeText(m, "unobtainium")

	m, msgs := send(m, key(tea.KeyEnter))
	m = deliver(m, msgs)

	assert.Contains(t, m.View(), search.NoResultsMessage)
	assert.False(t, m.widget.Loading())
}

func TestModel_CompactModeNeverFetchesSuggestions(t *testing.T) {
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			return []string{"should not appear"}, nil
		},
	}
	m := newTestModel(fetcher, false)

	m = typeText(m, "shoes")

	assert.Empty(t, fetcher.suggestionQueries)
	assert.NotContains(t, m.View(), "should not appear")
}

func TestModel_EscHidesSuggestions(t *testing.T) {
	fetcher := &mockFetcher{
		SuggestionsFunc: func(query string) ([]string, error) {
			return []string{"shoes"}, nil
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "sh")
	require.True(t, m.widget.SuggestionsShown())

	m, _ = send(m, key(tea.KeyEsc))

	assert.False(t, m.widget.SuggestionsShown())
	assert.NotContains(t, m.View(), "shoes")
}

func TestModel_ToggleDescription(t *testing.T) {
	long := strings.Repeat("word ", 60)
	fetcher := &mockFetcher{
		RecommendationsFunc: func(query string) []domain.Product {
			return []domain.Product{{ID: "1", Name: "Long Tea", Description: long, Price: 1}}
		},
	}
	m := newTestModel(fetcher, true)
	m = typeText(m, "tea")
	m, msgs := send(m, key(tea.KeyEnter))
	m = deliver(m, msgs)

	assert.Contains(t, m.View(), search.ReadMoreLabel)

	m, _ = send(m, key(tea.KeyTab))
	require.Equal(t, focusResults, m.focus)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.True(t, m.widget.Expanded(0))
	assert.Contains(t, m.View(), search.ReadLessLabel)
}

func TestModel_TabWithoutResultsStaysOnInput(t *testing.T) {
	m := newTestModel(&mockFetcher{}, true)

	m, _ = send(m, key(tea.KeyTab))

	assert.Equal(t, focusInput, m.focus)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(&mockFetcher{}, true)

	_, msgs := send(m, key(tea.KeyCtrlC))

	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
}
