package models

import "testing"

func TestAddScoreClampsAndRecomputesTotal(t *testing.T) {
	c := NewCompetitor(1, "Competidor 1")

	c.AddScore(CategoryPassagem, 3)
	if c.Scores[CategoryPassagem] != 3 {
		t.Fatalf("passagem = %d, want 3", c.Scores[CategoryPassagem])
	}
	if c.Total != 3 {
		t.Fatalf("total = %d, want 3", c.Total)
	}

	c.AddScore(CategoryPassagem, -3)
	c.AddScore(CategoryPassagem, -3)
	if c.Scores[CategoryPassagem] != 0 {
		t.Fatalf("passagem = %d, want 0 after clamping", c.Scores[CategoryPassagem])
	}
	if c.Total != 0 {
		t.Fatalf("total = %d, want 0", c.Total)
	}
}

func TestTotalIsSumOfAllCategories(t *testing.T) {
	c := NewCompetitor(1, "Competidor 1")

	c.AddScore(CategoryMontada, 4)
	c.AddScore(CategoryMontada, 4)
	c.AddScore(CategoryPassagem, 3)
	c.AddScore(CategoryQueda, 2)
	c.AddScore(CategoryQueda, -2)

	want := 4 + 4 + 3
	if c.Total != want {
		t.Fatalf("total = %d, want %d", c.Total, want)
	}
	for key, v := range c.Scores {
		if v < 0 {
			t.Fatalf("category %s negative: %d", key, v)
		}
	}
}

func TestCountersClampAtZero(t *testing.T) {
	c := NewCompetitor(2, "Competidor 2")

	c.AddAdvantages(1)
	c.AddAdvantages(-1)
	c.AddAdvantages(-1)
	if c.Advantages != 0 {
		t.Fatalf("advantages = %d, want 0", c.Advantages)
	}

	c.AddPenalties(-1)
	if c.Penalties != 0 {
		t.Fatalf("penalties = %d, want 0", c.Penalties)
	}
}

func TestNormalizeRepairsUntrustedRecord(t *testing.T) {
	c := Competitor{
		ID:         1,
		Name:       "A",
		Scores:     map[Category]int{CategoryMontada: -4, CategoryQueda: 2},
		Advantages: -1,
		Penalties:  3,
		Total:      99, // stale derived value
	}
	c.Normalize()

	if c.Scores[CategoryMontada] != 0 {
		t.Fatalf("montada = %d, want 0", c.Scores[CategoryMontada])
	}
	if _, ok := c.Scores[CategoryPassagem]; !ok {
		t.Fatal("passagem key missing after normalize")
	}
	if c.Advantages != 0 {
		t.Fatalf("advantages = %d, want 0", c.Advantages)
	}
	if c.Total != 2 {
		t.Fatalf("total = %d, want 2", c.Total)
	}
}

func TestCategoryConfig(t *testing.T) {
	cases := []struct {
		key    Category
		points int
	}{
		{CategoryMontada, 4},
		{CategoryPassagem, 3},
		{CategoryQueda, 2},
	}
	for _, tc := range cases {
		if !ValidCategory(tc.key) {
			t.Fatalf("category %s should be valid", tc.key)
		}
		if got := CategoryPoints(tc.key); got != tc.points {
			t.Fatalf("points(%s) = %d, want %d", tc.key, got, tc.points)
		}
	}
	if ValidCategory("raspagem") {
		t.Fatal("unknown category accepted")
	}
	if CategoryPoints("raspagem") != 0 {
		t.Fatal("unknown category has nonzero points")
	}
}
