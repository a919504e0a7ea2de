package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopsearch/internal/search"
)

const (
	defaultWidth = 80
	maxCardWidth = 96
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Discover Your Perfect Product"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Type to search, press enter to see recommendations."))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	if m.widget.SuggestionsShown() {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}

	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpText()))

	return b.String()
}

func (m Model) renderSuggestions() string {
	highlighted := m.widget.Highlighted()
	suggestions := m.widget.Suggestions()

	lines := make([]string, len(suggestions))
	for i, s := range suggestions {
		if i == highlighted {
			lines[i] = m.styles.HighlightedSuggestion.Render("› " + s)
		} else {
			lines[i] = m.styles.Suggestion.Render("  " + s)
		}
	}
	return m.styles.SuggestionPanel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderResults() string {
	switch m.widget.ResultsState() {
	case search.ResultsLoading:
		return m.spinner.View() + " Searching..."
	case search.ResultsEmpty:
		return m.styles.Empty.Render(search.NoResultsMessage) + "\n" +
			m.styles.EmptyHint.Render("Try searching for something else!")
	}

	cards := m.widget.Cards()
	rendered := make([]string, len(cards))
	for i, c := range cards {
		selected := m.focus == focusResults && i == m.selectedCard
		rendered[i] = m.renderCard(c, selected)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) renderCard(c search.Card, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	width := m.cardWidth()
	content := lipgloss.NewStyle().Width(width - style.GetHorizontalFrameSize())

	lines := []string{m.styles.CardName.Render(c.Name)}

	var meta []string
	if c.Type != "" {
		meta = append(meta, c.Type)
	}
	if len(c.Effects) > 0 {
		meta = append(meta, strings.Join(c.Effects, ", "))
	}
	if len(meta) > 0 {
		lines = append(lines, m.styles.CardMeta.Render(strings.Join(meta, " · ")))
	}

	lines = append(lines, content.Render(c.Description))
	if c.Toggle != "" {
		lines = append(lines, m.styles.Toggle.Render(c.Toggle))
	}
	if len(c.Ingredients) > 0 {
		lines = append(lines, content.Render("Ingredients: "+strings.Join(c.Ingredients, ", ")))
	}
	lines = append(lines, m.styles.CardPrice.Render("Price: "+c.Price))

	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) cardWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w > maxCardWidth {
		w = maxCardWidth
	}
	return w
}

func (m Model) helpText() string {
	if m.focus == focusResults {
		return "↑/↓ select • space read more/less • tab search box • ctrl+c quit"
	}
	if m.widget.SuggestionsShown() {
		return "↑/↓ choose suggestion • enter search • esc close • ctrl+c quit"
	}
	if m.widget.ResultsState() == search.ResultsList {
		return "enter search • tab browse results • ctrl+c quit"
	}
	return "enter search • ctrl+c quit"
}
