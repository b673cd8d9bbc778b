package geo

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateTierStructure(t *testing.T) {
	gen := NewGeneratorWithSource(6, rand.NewSource(1))
	questions := gen.Generate()

	if len(questions) != 4*6 {
		t.Fatalf("expected 24 questions, got %d", len(questions))
	}

	lastLevel := 0
	for i, q := range questions {
		if q.Level < lastLevel {
			t.Fatalf("question %d: level %d after level %d, levels must be non-decreasing", i, q.Level, lastLevel)
		}
		lastLevel = q.Level
	}
	if lastLevel != MaxLevel {
		t.Fatalf("expected final level %d, got %d", MaxLevel, lastLevel)
	}
}

func TestGenerateNoDuplicateTargetsWithinTier(t *testing.T) {
	// Repeated runs with different seeds; a biased or sampling-with-
	// replacement pick would collide quickly on the small pools.
	for seed := int64(0); seed < 20; seed++ {
		gen := NewGeneratorWithSource(6, rand.NewSource(seed))
		seen := make(map[int]map[string]bool)
		for _, q := range gen.Generate() {
			if seen[q.Level] == nil {
				seen[q.Level] = make(map[string]bool)
			}
			key := q.Text
			if seen[q.Level][key] {
				t.Fatalf("seed %d: duplicate question %q in level %d", seed, q.Text, q.Level)
			}
			seen[q.Level][key] = true
		}
	}
}

func TestGenerateCapsAtPoolSize(t *testing.T) {
	gen := NewGeneratorWithSource(1000, rand.NewSource(1))
	questions := gen.Generate()

	counts := make(map[int]int)
	for _, q := range questions {
		counts[q.Level]++
	}
	if counts[1] != len(Regions) {
		t.Fatalf("level 1: expected %d questions, got %d", len(Regions), counts[1])
	}
	if counts[2] != len(Capitals) {
		t.Fatalf("level 2: expected %d questions, got %d", len(Capitals), counts[2])
	}
}

func TestGenerateTargetsAreRegions(t *testing.T) {
	valid := make(map[string]bool, len(Regions))
	for _, r := range Regions {
		valid[r] = true
	}

	gen := NewGeneratorWithSource(6, rand.NewSource(42))
	for _, q := range gen.Generate() {
		if !valid[q.Target] {
			t.Fatalf("question %q: target %q is not a region", q.Text, q.Target)
		}
		if q.Attempts == nil {
			t.Fatalf("question %q: attempts map not initialized", q.Text)
		}
		if !strings.Contains(q.Text, "**") {
			t.Fatalf("question %q: prompt missing embedded term", q.Text)
		}
	}
}

func TestLevelRules(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		if LevelRules(level) == "" {
			t.Fatalf("expected rules text for level %d", level)
		}
	}
	if LevelRules(0) != "" || LevelRules(MaxLevel+1) != "" {
		t.Fatalf("expected empty rules outside levels 1..%d", MaxLevel)
	}
}
