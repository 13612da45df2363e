package content

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

func TestFilterCards(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name   string
		filter string
		check  func(t *testing.T, got []Card)
	}{
		{
			name:   "empty filter matches all",
			filter: "",
			check: func(t *testing.T, got []Card) {
				if len(got) != len(catalog.Cards()) {
					t.Errorf("got %d cards, want %d", len(got), len(catalog.Cards()))
				}
			},
		},
		{
			name:   "by domain",
			filter: `domain = "blade"`,
			check: func(t *testing.T, got []Card) {
				if len(got) == 0 {
					t.Fatal("no cards matched")
				}
				for _, card := range got {
					if card.Domain != "blade" {
						t.Errorf("unexpected domain %s", card.Domain)
					}
				}
			},
		},
		{
			name:   "by domain and level",
			filter: `domain = "bone" AND level <= 2`,
			check: func(t *testing.T, got []Card) {
				if len(got) != 5 {
					t.Errorf("got %d cards, want 5", len(got))
				}
				for _, card := range got {
					if card.Domain != "bone" || card.Level > 2 {
						t.Errorf("unexpected card %+v", card)
					}
				}
			},
		},
		{
			name:   "by type",
			filter: `type = "grimoire"`,
			check: func(t *testing.T, got []Card) {
				for _, card := range got {
					if card.Domain != "codex" {
						t.Errorf("grimoire outside codex: %+v", card)
					}
				}
			},
		},
		{
			name:   "disjunction",
			filter: `domain = "valor" OR domain = "splendor"`,
			check: func(t *testing.T, got []Card) {
				for _, card := range got {
					if card.Domain != "valor" && card.Domain != "splendor" {
						t.Errorf("unexpected domain %s", card.Domain)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterCards(catalog.Cards(), tt.filter)
			if err != nil {
				t.Fatalf("FilterCards: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestFilterCardsInvalid(t *testing.T) {
	catalog := NewCatalog()

	for _, filterStr := range []string{
		`rarity = "legendary"`,
		`domain = `,
		`level = "two"`,
	} {
		_, err := FilterCards(catalog.Cards(), filterStr)
		if !errors.Is(err, apperrors.New(apperrors.CodeContentInvalidFilter, "")) {
			t.Errorf("filter %q: expected %s, got %v", filterStr, apperrors.CodeContentInvalidFilter, err)
		}
	}
}
