package daggerheart

import "testing"

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Tier
	}{
		{1, TierTwo},
		{2, TierTwo},
		{3, TierTwo},
		{4, TierTwo},
		{5, TierThree},
		{6, TierThree},
		{7, TierThree},
		{8, TierFour},
		{9, TierFour},
		{10, TierFour},
	}
	for _, tt := range tests {
		if got := TierForLevel(tt.level); got != tt.want {
			t.Errorf("TierForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestIsTierAchievementLevel(t *testing.T) {
	want := map[int]bool{2: true, 5: true, 8: true}
	for level := LevelMin; level <= LevelMax; level++ {
		if got := IsTierAchievementLevel(level); got != want[level] {
			t.Errorf("IsTierAchievementLevel(%d) = %v, want %v", level, got, want[level])
		}
	}
}

func TestClearsTraitMarks(t *testing.T) {
	want := map[int]bool{5: true, 8: true}
	for level := LevelMin; level <= LevelMax; level++ {
		if got := ClearsTraitMarks(level); got != want[level] {
			t.Errorf("ClearsTraitMarks(%d) = %v, want %v", level, got, want[level])
		}
	}
}

func TestMaxDomainCardLevel(t *testing.T) {
	tests := []struct {
		targetLevel int
		want        int
	}{
		{2, 2},
		{4, 4},
		{5, 5},
		{7, 7},
		{8, 10},
		{10, 10},
	}
	for _, tt := range tests {
		if got := MaxDomainCardLevel(tt.targetLevel); got != tt.want {
			t.Errorf("MaxDomainCardLevel(%d) = %d, want %d", tt.targetLevel, got, tt.want)
		}
	}
}

func TestProficiencyBase(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{7, 2},
		{8, 3},
		{10, 3},
	}
	for _, tt := range tests {
		if got := ProficiencyBase(tt.level); got != tt.want {
			t.Errorf("ProficiencyBase(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestAvailableOptions(t *testing.T) {
	tests := []struct {
		targetLevel int
		want        int
	}{
		{2, 6},
		{5, 12},
		{8, 21},
	}
	for _, tt := range tests {
		if got := len(AvailableOptions(tt.targetLevel)); got != tt.want {
			t.Errorf("AvailableOptions(%d) returned %d options, want %d", tt.targetLevel, got, tt.want)
		}
	}
}

func TestFindOption(t *testing.T) {
	option, ok := FindOption(TierFour, AdvancementMulticlass)
	if !ok {
		t.Fatal("expected multiclass at tier 4")
	}
	if option.MaxSelections != 1 {
		t.Errorf("multiclass MaxSelections = %d, want 1", option.MaxSelections)
	}

	if _, ok := FindOption(TierTwo, AdvancementMulticlass); ok {
		t.Error("multiclass should not be offered at tier 2")
	}
	if _, ok := FindOption(TierThree, AdvancementProficiency); ok {
		t.Error("proficiency pick should not be offered at tier 3")
	}
}

func TestParseTrait(t *testing.T) {
	for _, name := range TraitNames() {
		if _, err := ParseTrait(string(name)); err != nil {
			t.Errorf("ParseTrait(%q) returned error: %v", name, err)
		}
	}
	if _, err := ParseTrait("charisma"); err == nil {
		t.Error("ParseTrait accepted an unknown trait")
	}
}
