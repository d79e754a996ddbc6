package game

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStatsZeroVotes(t *testing.T) {
	stats := NewStats("green", "red")

	require.Equal(t, 0, stats.TotalVotes)
	require.Equal(t, map[string]int{"green": 0, "red": 0}, stats.PerChoice)
	// No division error and every token maps to zero.
	require.Equal(t, map[string]int{"green": 0, "red": 0}, stats.Percentages())
}

func TestStatsPercentages(t *testing.T) {
	stats := NewStats("pull", "nothing")
	stats.Add("pull", 3)
	stats.Add("nothing", 1)

	require.Equal(t, 4, stats.TotalVotes)
	require.Equal(t, map[string]int{"pull": 75, "nothing": 25}, stats.Percentages())
}

func TestStatsRoundHalfUp(t *testing.T) {
	stats := NewStats("a", "b")
	stats.Add("a", 1)
	stats.Add("b", 7)

	// 1/8 = 12.5% rounds up to 13, 7/8 = 87.5% rounds up to 88.
	require.Equal(t, map[string]int{"a": 13, "b": 88}, stats.Percentages())
}

func TestStatsRoundingTolerance(t *testing.T) {
	// Three-way split rounds each share independently, so the sum may drift
	// from 100 by one percentage point. That is accepted behavior.
	stats := NewStats("a", "b", "c")
	stats.Add("a", 1)
	stats.Add("b", 1)
	stats.Add("c", 1)

	sum := 0
	for _, p := range stats.Percentages() {
		assert.Equal(t, 33, p)
		sum += p
	}
	require.GreaterOrEqual(t, sum, 99)
	require.LessOrEqual(t, sum, 101)
}
