package models

// Competitor holds one side's scoreboard state. Total is derived from the
// category scores and recomputed after every mutation; it is never set
// directly.
type Competitor struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Scores     map[Category]int `json:"scores"`
	Advantages int              `json:"advantages"`
	Penalties  int              `json:"penalties"`
	Total      int              `json:"total"`
}

// NewCompetitor returns a competitor with all counters at zero.
func NewCompetitor(id int, name string) Competitor {
	scores := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		scores[c.Key] = 0
	}
	return Competitor{
		ID:     id,
		Name:   name,
		Scores: scores,
	}
}

// AddScore adds delta points to a category, clamping the stored value at
// zero, and recomputes the total.
func (c *Competitor) AddScore(category Category, delta int) {
	c.Scores[category] = clampZero(c.Scores[category] + delta)
	c.recomputeTotal()
}

// AddAdvantages adjusts the advantage count, clamped at zero.
func (c *Competitor) AddAdvantages(delta int) {
	c.Advantages = clampZero(c.Advantages + delta)
}

// AddPenalties adjusts the penalty count, clamped at zero.
func (c *Competitor) AddPenalties(delta int) {
	c.Penalties = clampZero(c.Penalties + delta)
}

func (c *Competitor) recomputeTotal() {
	total := 0
	for _, v := range c.Scores {
		total += v
	}
	c.Total = total
}

// Normalize fills in missing category keys, clamps every counter at zero
// and recomputes the total. Used when seeding from a persisted snapshot
// whose shape is not trusted.
func (c *Competitor) Normalize() {
	if c.Scores == nil {
		c.Scores = make(map[Category]int, len(Categories))
	}
	for _, cat := range Categories {
		c.Scores[cat.Key] = clampZero(c.Scores[cat.Key])
	}
	c.Advantages = clampZero(c.Advantages)
	c.Penalties = clampZero(c.Penalties)
	c.recomputeTotal()
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
