package game

import "math"

// Stats is the aggregate vote breakdown for a single scenario. PerChoice maps
// both of the scenario's choice tokens to their vote counts, zero-filled for
// tokens without votes.
type Stats struct {
	PerChoice  map[string]int `json:"perChoice"`
	TotalVotes int            `json:"totalVotes"`
}

// NewStats creates a Stats with every token zero-filled.
func NewStats(tokens ...string) Stats {
	perChoice := make(map[string]int, len(tokens))
	for _, token := range tokens {
		perChoice[token] = 0
	}
	return Stats{
		PerChoice:  perChoice,
		TotalVotes: 0,
	}
}

// Add records count votes for the given token.
func (s *Stats) Add(token string, count int) {
	s.PerChoice[token] += count
	s.TotalVotes += count
}

// Percentages derives the percentage share per choice token, rounded half-up
// to the nearest integer. With zero total votes every token maps to 0 so
// callers never divide by zero. Because each share rounds independently, the
// percentages do not necessarily sum to exactly 100.
func (s Stats) Percentages() map[string]int {
	percentages := make(map[string]int, len(s.PerChoice))
	for token, count := range s.PerChoice {
		percentages[token] = percent(count, s.TotalVotes)
	}
	return percentages
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(count)*100/float64(total) + 0.5))
}
