package catalog

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shopsearch/internal/domain"
)

const (
	MaxSuggestions     = 5
	MaxRecommendations = 10
)

// PopularKeywords are always offered as suggestions after name matches.
var PopularKeywords = []string{"relaxation", "stress relief", "energy boost", "sleep aid", "focus", "hydration"}

// Field weights for recommendation scoring.
const (
	nameWeight        = 3
	typeWeight        = 2
	effectWeight      = 2
	ingredientWeight  = 1
	descriptionWeight = 1
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Suggestions returns product names containing query, title-cased, followed
// by the popular keywords, without duplicates and capped at MaxSuggestions.
func (s *Service) Suggestions(ctx context.Context, query string) ([]string, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	title := cases.Title(language.English)

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, MaxSuggestions)
	add := func(s string) {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok || len(suggestions) >= MaxSuggestions {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, p := range products {
		name := strings.ToLower(p.Name)
		if q != "" && strings.Contains(name, q) {
			add(title.String(name))
		}
	}
	for _, kw := range PopularKeywords {
		add(kw)
	}

	return suggestions, nil
}

type scoredProduct struct {
	product domain.Product
	score   int
}

// Recommendations ranks products by how many query terms they mention,
// weighting the name highest. Products with no hits are left out. Ties go to
// the cheaper product.
func (s *Service) Recommendations(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	phrase := strings.ToLower(strings.TrimSpace(query))
	terms := strings.Fields(phrase)

	var scored []scoredProduct
	for _, p := range products {
		score := scoreProduct(p, phrase, terms)
		if score > 0 {
			scored = append(scored, scoredProduct{product: p, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].product.Price != scored[j].product.Price {
			return scored[i].product.Price < scored[j].product.Price
		}
		return scored[i].product.Name < scored[j].product.Name
	})

	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	out := make([]domain.Product, len(scored))
	for i, sp := range scored {
		out[i] = sp.product
	}
	return out, nil
}

func scoreProduct(p domain.Product, phrase string, terms []string) int {
	if len(terms) == 0 {
		return 0
	}

	name := strings.ToLower(p.Name)
	typ := strings.ToLower(p.Type)
	effects := strings.ToLower(strings.Join(p.Effects, "|"))
	ingredients := strings.ToLower(strings.Join(p.Ingredients, "|"))
	desc := strings.ToLower(p.Description)

	score := 0
	if len(terms) > 1 && (strings.Contains(name, phrase) || strings.Contains(effects, phrase)) {
		score += nameWeight
	}
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += nameWeight
		}
		if typ != "" && strings.Contains(typ, term) {
			score += typeWeight
		}
		if strings.Contains(effects, term) {
			score += effectWeight
		}
		if strings.Contains(ingredients, term) {
			score += ingredientWeight
		}
		if strings.Contains(desc, term) {
			score += descriptionWeight
		}
	}
	return score
}
