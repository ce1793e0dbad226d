package discovery

import (
	"strings"

	"github.com/stylediscover/server/internal/catalog/domain"
)

// Filter returns the outfits matching every active dimension of the
// criteria, preserving catalog order. It is pure: the catalog slice is
// never mutated and the result is freshly allocated. Unconstrained
// criteria return the full catalog; an inverted price range (min > max)
// returns nothing, since no price can satisfy it.
func Filter(catalog []domain.Outfit, c Criteria) []domain.Outfit {
	result := make([]domain.Outfit, 0, len(catalog))
	for _, outfit := range catalog {
		if Matches(outfit, c) {
			result = append(result, outfit)
		}
	}
	return result
}

// Matches reports whether one outfit satisfies every dimension of the
// criteria. All dimensions are conjunctive.
func Matches(o domain.Outfit, c Criteria) bool {
	return matchesSearch(o, c.Search) &&
		matchesSelect(c.Category, o.Category) &&
		matchesSelect(c.Style, o.Style) &&
		matchesSeason(c.Season, o.Season) &&
		matchesSelect(c.Occasion, o.Occasion) &&
		matchesColors(o, c.Colors) &&
		matchesPrice(o.Price, c.Price) &&
		matchesQuizCategory(o, c) &&
		matchesQuizColor(o, c) &&
		matchesQuizSet(o.Style, c.QuizStyles, c.QuizActive) &&
		matchesQuizSet(o.Season, c.QuizSeasons, c.QuizActive) &&
		matchesQuizSet(o.Occasion, c.QuizOccasions, c.QuizActive)
}

func matchesSearch(o domain.Outfit, term string) bool {
	if term == "" {
		return true
	}
	needle := norm(term)
	if strings.Contains(norm(o.Name), needle) || strings.Contains(norm(o.Description), needle) {
		return true
	}
	for _, tag := range o.Tags {
		if strings.Contains(norm(tag), needle) {
			return true
		}
	}
	return false
}

// matchesSeason is matchesSelect plus the season-agnostic product sentinel:
// an outfit tagged "All Season" passes any season filter.
func matchesSeason(criterion, season string) bool {
	return matchesSelect(criterion, season) || norm(season) == norm(domain.SeasonAll)
}

// matchesColors has match-any semantics: the outfit passes when any of its
// colors contains any required color, case-insensitively.
func matchesColors(o domain.Outfit, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range o.Colors {
			if strings.Contains(norm(have), norm(want)) {
				return true
			}
		}
	}
	return false
}

func matchesPrice(price float64, r PriceRange) bool {
	return price >= r.Min && price <= r.Max
}

func matchesQuizCategory(o domain.Outfit, c Criteria) bool {
	if !c.QuizActive || len(c.QuizCategories) == 0 {
		return true
	}
	_, ok := c.QuizCategories[norm(o.Category)]
	return ok
}

// matchesQuizSet narrows one single-valued dimension by exact lowercased
// membership. Unlike the browse season filter there is no season-agnostic
// sentinel here: a season selection admits only outfits tagged with it.
func matchesQuizSet(value string, selected map[string]struct{}, active bool) bool {
	if !active || len(selected) == 0 {
		return true
	}
	_, ok := selected[norm(value)]
	return ok
}

func matchesQuizColor(o domain.Outfit, c Criteria) bool {
	if !c.QuizActive || len(c.QuizColors) == 0 {
		return true
	}
	for _, color := range o.Colors {
		if _, ok := c.QuizColors[norm(color)]; ok {
			return true
		}
	}
	return false
}
