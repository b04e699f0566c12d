package factors

import (
	"errors"
	"testing"

	"github.com/nikogura/career-risk/pkg/config"
)

func newTestTable(t *testing.T) (table *Table) {
	t.Helper()

	table, err := NewTable(config.Default())
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	return table
}

func TestNewTableRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	delete(cfg.Industry.Idiosyncratic, "Tech")

	_, err := NewTable(cfg)
	if err == nil {
		t.Error("Expected error for partial effect coverage, got nil")
	}
}

func TestLookup(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name              string
		dim               Dimension
		value             string
		wantSystematic    float64
		wantIdiosyncratic float64
	}{
		{
			name:              "intermediate skill",
			dim:               Skill,
			value:             "Intermediate",
			wantSystematic:    1.0,
			wantIdiosyncratic: 1.1,
		},
		{
			name:              "bachelors education",
			dim:               Education,
			value:             "Bachelor's",
			wantSystematic:    1.0,
			wantIdiosyncratic: 1.05,
		},
		{
			name:              "tech industry",
			dim:               Industry,
			value:             "Tech",
			wantSystematic:    0.9,
			wantIdiosyncratic: 1.0,
		},
		{
			name:              "service provider role",
			dim:               JobRole,
			value:             "Service Provider",
			wantSystematic:    1.0,
			wantIdiosyncratic: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := table.Lookup(tt.dim, tt.value)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}

			if effect.Systematic != tt.wantSystematic {
				t.Errorf("Expected systematic %v, got %v", tt.wantSystematic, effect.Systematic)
			}

			if effect.Idiosyncratic != tt.wantIdiosyncratic {
				t.Errorf("Expected idiosyncratic %v, got %v", tt.wantIdiosyncratic, effect.Idiosyncratic)
			}
		})
	}
}

func TestLookupUnknownValue(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name  string
		dim   Dimension
		value string
	}{
		{name: "legendary skill", dim: Skill, value: "Legendary"},
		{name: "unknown education", dim: Education, value: "Doctorate of Vibes"},
		{name: "unknown industry", dim: Industry, value: "Piracy"},
		{name: "unknown role", dim: JobRole, value: "Wizard"},
		{name: "empty value", dim: Skill, value: ""},
		{name: "case mismatch", dim: Industry, value: "tech"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Lookup(tt.dim, tt.value)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if !errors.Is(err, ErrUnknownAttribute) {
				t.Errorf("Expected ErrUnknownAttribute, got %v", err)
			}
		})
	}
}

func TestLookupUnknownDimension(t *testing.T) {
	table := newTestTable(t)

	_, err := table.Lookup(Dimension("astrology"), "Aquarius")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("Expected ErrUnknownDimension, got %v", err)
	}
}

func TestLevelsOrdering(t *testing.T) {
	table := newTestTable(t)

	skillLevels := table.Levels(Skill)
	expected := []string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"}

	if len(skillLevels) != len(expected) {
		t.Fatalf("Expected %d skill levels, got %d", len(expected), len(skillLevels))
	}

	for i, level := range expected {
		if skillLevels[i] != level {
			t.Errorf("Expected level %q at code %d, got %q", level, i, skillLevels[i])
		}
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	table := newTestTable(t)

	levels := table.Levels(Education)
	levels[0] = "Tampered"

	if table.Levels(Education)[0] == "Tampered" {
		t.Error("Levels should return a copy, not the internal slice")
	}
}

func TestLevelByCode(t *testing.T) {
	table := newTestTable(t)

	level, err := table.LevelByCode(Skill, 2)
	if err != nil {
		t.Fatalf("LevelByCode failed: %v", err)
	}

	if level != "Intermediate" {
		t.Errorf("Expected 'Intermediate' for skill code 2, got %q", level)
	}

	level, err = table.LevelByCode(Education, 2)
	if err != nil {
		t.Fatalf("LevelByCode failed: %v", err)
	}

	if level != "Bachelor's" {
		t.Errorf("Expected \"Bachelor's\" for education code 2, got %q", level)
	}
}

func TestLevelByCodeOutOfRange(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name string
		dim  Dimension
		code int
	}{
		{name: "negative code", dim: Skill, code: -1},
		{name: "past the end", dim: Education, code: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.LevelByCode(tt.dim, tt.code)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if !errors.Is(err, ErrUnknownAttribute) {
				t.Errorf("Expected ErrUnknownAttribute, got %v", err)
			}
		})
	}
}

func TestFullCoverage(t *testing.T) {
	table := newTestTable(t)

	// Every configured level of every dimension must resolve to positive
	// multipliers on both components.
	for _, dim := range []Dimension{Skill, Education, Industry, JobRole} {
		for _, level := range table.Levels(dim) {
			effect, err := table.Lookup(dim, level)
			if err != nil {
				t.Errorf("Lookup failed for %s %q: %v", dim, level, err)
				continue
			}

			if effect.Systematic <= 0 || effect.Idiosyncratic <= 0 {
				t.Errorf("Nonpositive multiplier for %s %q: %+v", dim, level, effect)
			}
		}
	}
}

func TestTableConstants(t *testing.T) {
	table := newTestTable(t)

	if table.BaseSystematic() != 0.4 {
		t.Errorf("Expected base systematic 0.4, got %v", table.BaseSystematic())
	}

	if table.BaseIdiosyncratic() != 0.3 {
		t.Errorf("Expected base idiosyncratic 0.3, got %v", table.BaseIdiosyncratic())
	}

	if table.MinRisk() != 0.1 || table.MaxRisk() != 0.9 {
		t.Errorf("Expected clamp bounds [0.1, 0.9], got [%v, %v]", table.MinRisk(), table.MaxRisk())
	}

	if table.DefaultHorizon() != 10 {
		t.Errorf("Expected default horizon 10, got %d", table.DefaultHorizon())
	}
}
