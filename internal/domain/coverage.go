package domain

import "math"

// Coverage counts, for one target locale, how many source keys have a
// non-empty value, accumulated across all namespaces.
type Coverage struct {
	Total      int
	Translated int
}

// Add folds another counter pair into this one.
func (c *Coverage) Add(other Coverage) {
	c.Total += other.Total
	c.Translated += other.Translated
}

// Percent returns the rounded completion percentage, 0 when no source key
// was considered.
func (c Coverage) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Translated) / float64(c.Total) * 100))
}
