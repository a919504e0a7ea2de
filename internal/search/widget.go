// Package search holds the view state of the product search widget: the
// search text, the suggestion panel and the recommendation results. It does
// no I/O. Callers perform the requests it asks for and feed the responses
// back in.
package search

import (
	"strings"
	"unicode/utf8"

	"shopsearch/internal/domain"
)

// minSuggestionLength is the shortest text, in characters, that triggers a
// suggestion request.
const minSuggestionLength = 2

type Options struct {
	// Suggestions enables the suggestion panel. Without it the widget is a
	// plain search box with a results list.
	Suggestions bool
}

// SuggestionRequest asks the caller to fetch suggestions for Query. The
// response must be handed back with the same Seq.
type SuggestionRequest struct {
	Seq   uint64
	Query string
}

// Widget is not safe for concurrent use.
type Widget struct {
	opts Options

	query           string
	suggestions     []string
	recommendations []domain.Product
	expanded        []bool
	loading         bool
	panelVisible    bool
	highlighted     int

	// seq identifies the latest suggestion request. Anything that clears or
	// re-requests suggestions bumps it so older responses are dropped.
	seq uint64
}

func New(opts Options) *Widget {
	return &Widget{
		opts:            opts,
		suggestions:     []string{},
		recommendations: []domain.Product{},
		highlighted:     -1,
	}
}

func (w *Widget) SuggestionsEnabled() bool { return w.opts.Suggestions }
func (w *Widget) Query() string            { return w.query }
func (w *Widget) Loading() bool            { return w.loading }
func (w *Widget) PanelVisible() bool       { return w.panelVisible }

func (w *Widget) Suggestions() []string {
	out := make([]string, len(w.suggestions))
	copy(out, w.suggestions)
	return out
}

func (w *Widget) Recommendations() []domain.Product {
	out := make([]domain.Product, len(w.recommendations))
	copy(out, w.recommendations)
	return out
}

// SetQuery records a text edit. Editing always opens the suggestion panel.
func (w *Widget) SetQuery(text string) *SuggestionRequest {
	w.query = text
	w.panelVisible = true
	return w.sync()
}

// Focus opens the suggestion panel when the input gains focus.
func (w *Widget) Focus() *SuggestionRequest {
	if w.panelVisible {
		return nil
	}
	w.panelVisible = true
	return w.sync()
}

// HidePanel closes the suggestion panel and drops its contents.
func (w *Widget) HidePanel() {
	if !w.panelVisible {
		return
	}
	w.panelVisible = false
	w.sync()
}

// sync re-evaluates the suggestion list after the text or the panel
// visibility changed.
func (w *Widget) sync() *SuggestionRequest {
	if !w.opts.Suggestions {
		return nil
	}

	w.seq++
	if w.panelVisible && utf8.RuneCountInString(w.query) >= minSuggestionLength {
		return &SuggestionRequest{Seq: w.seq, Query: w.query}
	}

	w.suggestions = []string{}
	w.highlighted = -1
	return nil
}

// ApplySuggestions stores a suggestion response. It reports false and changes
// nothing when a newer request has been issued since.
func (w *Widget) ApplySuggestions(seq uint64, suggestions []string) bool {
	if seq != w.seq {
		return false
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	w.suggestions = suggestions
	w.highlighted = -1
	return true
}

// IsCurrent reports whether seq belongs to the latest suggestion request.
// A failed current request leaves the previous list in place.
func (w *Widget) IsCurrent(seq uint64) bool {
	return seq == w.seq
}

// BeginSearch starts a recommendation search for the current text. Blank
// text is ignored and leaves the state untouched.
func (w *Widget) BeginSearch() (string, bool) {
	q := strings.TrimSpace(w.query)
	if q == "" {
		return "", false
	}

	w.HidePanel()
	w.loading = true
	return q, true
}

// FinishSearch stores the search result and clears the loading flag.
func (w *Widget) FinishSearch(products []domain.Product) {
	if products == nil {
		products = []domain.Product{}
	}
	w.recommendations = products
	w.expanded = make([]bool, len(products))
	w.loading = false
}

// SelectSuggestion puts keyword in the search box and searches for it.
func (w *Widget) SelectSuggestion(keyword string) (string, bool) {
	w.query = keyword
	w.HidePanel()
	return w.BeginSearch()
}

// SuggestionsShown reports whether the suggestion panel is on screen.
func (w *Widget) SuggestionsShown() bool {
	return w.opts.Suggestions && w.panelVisible && !w.loading && len(w.suggestions) > 0
}

// MoveHighlight moves the suggestion highlight by delta, wrapping around.
func (w *Widget) MoveHighlight(delta int) {
	if !w.SuggestionsShown() {
		return
	}
	n := len(w.suggestions)
	if w.highlighted < 0 {
		if delta > 0 {
			w.highlighted = 0
		} else {
			w.highlighted = n - 1
		}
		return
	}
	w.highlighted = ((w.highlighted+delta)%n + n) % n
}

// Highlighted returns the highlighted suggestion index, or -1.
func (w *Widget) Highlighted() int {
	if !w.SuggestionsShown() {
		return -1
	}
	return w.highlighted
}

func (w *Widget) HighlightedSuggestion() (string, bool) {
	i := w.Highlighted()
	if i < 0 {
		return "", false
	}
	return w.suggestions[i], true
}

// ToggleExpanded flips the description of result i between its preview and
// full text. Short descriptions have nothing to toggle.
func (w *Widget) ToggleExpanded(i int) bool {
	if i < 0 || i >= len(w.recommendations) || !w.recommendations[i].HasLongDescription() {
		return false
	}
	w.expanded[i] = !w.expanded[i]
	return true
}

func (w *Widget) Expanded(i int) bool {
	return i >= 0 && i < len(w.expanded) && w.expanded[i]
}
