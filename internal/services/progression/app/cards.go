package app

import (
	"context"

	"github.com/louisbranch/hearthbound/internal/services/progression/content"
	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
)

// AvailableDomainCards lists the catalogue cards the character could take
// when reaching targetLevel: cards from its domains, within the level cap,
// and not already owned. An optional AIP-160 filter narrows the result, e.g.
// `domain = "blade" AND level >= 2`.
func (s *Service) AvailableDomainCards(ctx context.Context, characterID string, targetLevel int, filterStr string) ([]content.Card, error) {
	ctx, span := s.tracer.Start(ctx, "progression.AvailableDomainCards")
	defer span.End()

	sheet, err := s.Sheet(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if targetLevel == 0 {
		targetLevel = sheet.Level + 1
	}
	maxLevel := daggerheart.MaxDomainCardLevel(targetLevel)

	candidates := s.catalog.CardsForDomains(sheet.Domains)
	eligible := make([]content.Card, 0, len(candidates))
	for _, card := range candidates {
		if card.Level > maxLevel {
			continue
		}
		if sheet.OwnsCard(card.ID) {
			continue
		}
		eligible = append(eligible, card)
	}

	return content.FilterCards(eligible, filterStr)
}
