package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/amaumene/streamy/pkg/torrentsearch/models"
)

// SanitizeTitle replaces anything that is not a letter, digit or whitespace
// with a space, collapses whitespace runs and trims the result.
func SanitizeTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, title)
	return strings.Join(strings.Fields(cleaned), " ")
}

// BuildQueryPlan builds the ordered query/category pairs for a target.
// The title is always sanitized first; an empty result still yields a plan.
func BuildQueryPlan(target models.Target) models.QueryPlan {
	title := SanitizeTitle(target.Title)

	switch target.Kind {
	case models.KindMovie:
		return models.QueryPlan{
			{Query: title, Category: models.CategoryMovies},
			{Query: title, Category: models.CategoryHDMovies},
		}
	case models.KindTVGeneral:
		return tvPairs(title)
	case models.KindTVSeason:
		return tvPairs(
			fmt.Sprintf("%s S%02d", title, target.Season),
			fmt.Sprintf("%s Season %d", title, target.Season),
		)
	case models.KindTVEpisode:
		return tvPairs(
			fmt.Sprintf("%s S%02dE%02d", title, target.Season, target.Episode),
			fmt.Sprintf("%s Season %d Episode %d", title, target.Season, target.Episode),
		)
	default:
		return models.QueryPlan{{Query: title, Category: models.CategoryAll}}
	}
}

// tvPairs issues every query against the regular then the HD TV category.
func tvPairs(queries ...string) models.QueryPlan {
	plan := make(models.QueryPlan, 0, len(queries)*2)
	for _, q := range queries {
		plan = append(plan,
			models.QueryPair{Query: q, Category: models.CategoryTVShows},
			models.QueryPair{Query: q, Category: models.CategoryHDTVShows},
		)
	}
	return plan
}
