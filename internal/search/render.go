package search

import "shopsearch/internal/domain"

const (
	NoResultsMessage = "No results found."
	NoDescription    = "No description available."
	ReadMoreLabel    = "Read more"
	ReadLessLabel    = "Read less"
)

type ResultsState int

const (
	ResultsLoading ResultsState = iota
	ResultsEmpty
	ResultsList
)

func (s ResultsState) String() string {
	switch s {
	case ResultsLoading:
		return "loading"
	case ResultsEmpty:
		return "empty"
	case ResultsList:
		return "list"
	}
	return "unknown"
}

// Card is the display form of one recommended product.
type Card struct {
	Name        string
	Description string
	Price       string
	Type        string
	Effects     []string
	Ingredients []string
	// Toggle is the label of the expand control, empty when the description
	// is short enough to show in full.
	Toggle string
}

func (w *Widget) ResultsState() ResultsState {
	switch {
	case w.loading:
		return ResultsLoading
	case len(w.recommendations) == 0:
		return ResultsEmpty
	default:
		return ResultsList
	}
}

// Cards returns one card per recommendation, or nil while loading.
func (w *Widget) Cards() []Card {
	if w.ResultsState() != ResultsList {
		return nil
	}

	cards := make([]Card, len(w.recommendations))
	for i, p := range w.recommendations {
		cards[i] = newCard(p, w.Expanded(i))
	}
	return cards
}

func newCard(p domain.Product, expanded bool) Card {
	c := Card{
		Name:        p.Name,
		Price:       p.FormattedPrice(),
		Type:        p.Type,
		Effects:     p.Effects,
		Ingredients: p.Ingredients,
	}

	switch {
	case p.Description == "":
		c.Description = NoDescription
	case !p.HasLongDescription():
		c.Description = p.Description
	case expanded:
		c.Description = p.Description
		c.Toggle = ReadLessLabel
	default:
		c.Description = p.DescriptionPreview()
		c.Toggle = ReadMoreLabel
	}

	return c
}
