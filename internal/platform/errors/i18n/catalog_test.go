package i18n

import "testing"

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	cat := GetCatalog("xx-XX")
	if cat == nil {
		t.Fatal("expected catalog")
	}
	if cat.Locale() != BaseLocale {
		t.Fatalf("expected %s, got %s", BaseLocale, cat.Locale())
	}
}

func TestGetCatalogMatchesLanguage(t *testing.T) {
	cat := GetCatalog("en-GB")
	if cat == nil {
		t.Fatal("expected catalog")
	}
	if cat.Locale() != BaseLocale {
		t.Fatalf("expected en-GB to resolve to %s, got %s", BaseLocale, cat.Locale())
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	got := cat.Format(CodeAdvancementLevelBelowTier, map[string]string{"tier": "3"})
	want := "Character level insufficient for tier 3."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatUnknownCodeReturnsCode(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	if got := cat.Format("NO_SUCH_CODE", nil); got != "NO_SUCH_CODE" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

func TestFormatNilMetadata(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	got := cat.Format(CodeAdvancementSlotTaken, nil)
	if got != "Advancement slot already taken." {
		t.Fatalf("unexpected message %q", got)
	}
}
