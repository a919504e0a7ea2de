// Package tui renders the search widget as a bubbletea program.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopsearch/internal/search"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Model is the search page. All widget state changes happen in Update, on
// the program goroutine; fetches run as commands.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	logger  *zap.Logger

	widget  *search.Widget
	input   textinput.Model
	spinner spinner.Model

	focus        focusArea
	selectedCard int
	width        int

	styles Styles
}

// New builds the search page. ctx bounds every request the page issues.
func New(ctx context.Context, fetcher Fetcher, opts search.Options, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a product..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	w := search.New(opts)
	w.Focus()

	return Model{
		ctx:     ctx,
		fetcher: fetcher,
		logger:  logger,
		widget:  w,
		input:   ti,
		spinner: sp,
		focus:   focusInput,
		styles:  DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.FocusMsg:
		if m.focus == focusInput {
			return m, fetchSuggestions(m.ctx, m.fetcher, m.widget.Focus())
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyTab {
			return m.toggleFocus()
		}
		if m.focus == focusResults {
			return m.updateResults(msg)
		}
		return m.updateInput(msg)

	case suggestionsMsg:
		m.handleSuggestions(msg)
		return m, nil

	case recommendationsMsg:
		m.widget.FinishSearch(msg.products)
		m.selectedCard = 0
		m.logger.Debug("recommendations shown",
			zap.String("query", msg.query),
			zap.Int("count", len(msg.products)),
		)
		return m, nil

	case spinner.TickMsg:
		if !m.widget.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		if m.widget.ResultsState() != search.ResultsList {
			return m, nil
		}
		m.focus = focusResults
		m.input.Blur()
		return m, nil
	}

	m.focus = focusInput
	focusCmd := m.input.Focus()
	return m, tea.Batch(focusCmd, fetchSuggestions(m.ctx, m.fetcher, m.widget.Focus()))
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.widget.HidePanel()
		return m, nil
	case tea.KeyUp:
		m.widget.MoveHighlight(-1)
		return m, nil
	case tea.KeyDown:
		m.widget.MoveHighlight(1)
		return m, nil
	case tea.KeyEnter:
		if keyword, ok := m.widget.HighlightedSuggestion(); ok {
			m.input.SetValue(keyword)
			m.input.CursorEnd()
			query, ok := m.widget.SelectSuggestion(keyword)
			cmd := m.startSearch(query, ok)
			return m, cmd
		}
		query, ok := m.widget.BeginSearch()
		cmd := m.startSearch(query, ok)
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	return m, tea.Batch(cmd, fetchSuggestions(m.ctx, m.fetcher, m.widget.SetQuery(m.input.Value())))
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := len(m.widget.Recommendations())

	switch msg.String() {
	case "up", "k":
		if m.selectedCard > 0 {
			m.selectedCard--
		}
	case "down", "j":
		if m.selectedCard < cards-1 {
			m.selectedCard++
		}
	case " ", "enter":
		m.widget.ToggleExpanded(m.selectedCard)
	case "esc":
		return m.toggleFocus()
	}

	return m, nil
}

func (m *Model) startSearch(query string, ok bool) tea.Cmd {
	if !ok {
		m.logger.Debug("ignoring blank search")
		return nil
	}
	m.focus = focusInput
	m.logger.Info("searching", zap.String("query", query))
	return tea.Batch(fetchRecommendations(m.ctx, m.fetcher, query), m.spinner.Tick)
}

func (m Model) handleSuggestions(msg suggestionsMsg) {
	logger := m.logger.With(zap.String("query", msg.query), zap.Uint64("seq", msg.seq))

	if msg.err != nil {
		if m.widget.IsCurrent(msg.seq) {
			logger.Error("fetching suggestions failed", zap.Error(msg.err))
		} else {
			logger.Debug("stale suggestion request failed", zap.Error(msg.err))
		}
		return
	}

	if !m.widget.ApplySuggestions(msg.seq, msg.suggestions) {
		logger.Debug("discarding stale suggestions")
	}
}
