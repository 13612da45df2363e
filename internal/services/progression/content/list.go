package content

import (
	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
	"github.com/louisbranch/hearthbound/internal/services/progression/content/filter"
)

// FilterCards narrows a card listing with an AIP-160 filter expression, e.g.
// `domain = "blade" AND level <= 3`. An empty filter matches every card.
func FilterCards(cards []Card, filterStr string) ([]Card, error) {
	parsed, err := filter.Parse(filterStr, filter.CardFields())
	if err != nil {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeContentInvalidFilter,
			"invalid card filter",
			map[string]string{"filter": filterStr},
			err,
		)
	}

	out := make([]Card, 0, len(cards))
	for _, card := range cards {
		match, err := filter.Evaluate(parsed, cardResolver(card))
		if err != nil {
			return nil, apperrors.WrapWithMetadata(
				apperrors.CodeContentInvalidFilter,
				"invalid card filter",
				map[string]string{"filter": filterStr},
				err,
			)
		}
		if match {
			out = append(out, card)
		}
	}
	return out, nil
}

func cardResolver(card Card) filter.Resolver {
	return func(name string) (any, bool) {
		switch name {
		case "domain":
			return card.Domain, true
		case "level":
			return card.Level, true
		case "name":
			return card.Name, true
		case "type":
			return card.Type, true
		case "recall":
			return card.Recall, true
		default:
			return nil, false
		}
	}
}
