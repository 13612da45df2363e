package daggerheart

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

func TestEncodeDecodePayload(t *testing.T) {
	tests := []struct {
		name   string
		choice AdvancementChoice
	}{
		{"hit point", HitPointChoice{Bonus: 1}},
		{"evasion", EvasionChoice{Bonus: 1}},
		{"stress", StressChoice{Bonus: 1}},
		{"trait bonus", TraitBonusChoice{Traits: []Trait{TraitAgility, TraitFinesse}, Bonus: 1}},
		{"experience bonus", ExperienceBonusChoice{Experiences: []string{"Blacksmith", "Silver Tongue"}, Bonus: 1}},
		{"domain card", DomainCardChoice{Domain: "blade", CardID: "blade-2-whirlwind"}},
		{"proficiency", ProficiencyChoice{Bonus: 1}},
		{"subclass", SubclassChoice{SubclassID: "call-of-the-slayer"}},
		{"multiclass", MulticlassChoice{ClassID: "wizard", Domain: "codex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := EncodePayload(tt.choice)
			if err != nil {
				t.Fatalf("EncodePayload: %v", err)
			}
			decoded, err := DecodePayload(tt.choice.AdvancementType(), payload)
			if err != nil {
				t.Fatalf("DecodePayload: %v", err)
			}
			if decoded.AdvancementType() != tt.choice.AdvancementType() {
				t.Errorf("round trip changed type: got %s, want %s", decoded.AdvancementType(), tt.choice.AdvancementType())
			}
		})
	}
}

func TestDecodePayloadTierCard(t *testing.T) {
	payload, err := EncodePayload(DomainCardChoice{Domain: "bone", CardID: "bone-2-strategic-approach"})
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	decoded, err := DecodePayload(AdvancementTierDomainCard, payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	card, ok := decoded.(DomainCardChoice)
	if !ok {
		t.Fatalf("decoded %T, want DomainCardChoice", decoded)
	}
	if card.CardID != "bone-2-strategic-approach" {
		t.Errorf("CardID = %q", card.CardID)
	}
}

func TestDecodePayloadUnknownType(t *testing.T) {
	_, err := DecodePayload(AdvancementType("ascension"), "{}")
	if !errors.Is(err, apperrors.New(apperrors.CodeAdvancementUnknownType, "")) {
		t.Fatalf("expected %s, got %v", apperrors.CodeAdvancementUnknownType, err)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	_, err := DecodePayload(AdvancementHitPoint, "{not json")
	if !errors.Is(err, apperrors.New(apperrors.CodeAdvancementMalformedPayload, "")) {
		t.Fatalf("expected %s, got %v", apperrors.CodeAdvancementMalformedPayload, err)
	}
}

func TestEncodePayloadNil(t *testing.T) {
	if _, err := EncodePayload(nil); err == nil {
		t.Fatal("expected error for nil choice")
	}
}

func TestDescribe(t *testing.T) {
	got := TraitBonusChoice{Traits: []Trait{TraitAgility, TraitStrength}}.Describe()
	want := "Gained +1 to agility and strength"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
