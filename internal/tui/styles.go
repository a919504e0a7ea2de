package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	accent  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	muted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	border  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	text    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
)

// Styles groups the lipgloss styles used by the search view.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Input    lipgloss.Style

	SuggestionPanel       lipgloss.Style
	Suggestion            lipgloss.Style
	HighlightedSuggestion lipgloss.Style

	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardName     lipgloss.Style
	CardMeta     lipgloss.Style
	CardPrice    lipgloss.Style
	Toggle       lipgloss.Style

	Empty     lipgloss.Style
	EmptyHint lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(muted),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		SuggestionPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border),
		Suggestion:            lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		HighlightedSuggestion: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		CardName:  lipgloss.NewStyle().Bold(true).Foreground(text),
		CardMeta:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		CardPrice: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Toggle:    lipgloss.NewStyle().Foreground(primary).Underline(true),

		Empty:     lipgloss.NewStyle().Bold(true).Foreground(text).MarginTop(1),
		EmptyHint: lipgloss.NewStyle().Foreground(muted),
		Help:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
