// Package sentiment scores news text into a bounded compound value and
// aggregates article scores into one record per calendar day.
package sentiment

import (
	"math"
	"strings"

	domsvc "OilPulse/internal/domain/service"
)

// normalization constant keeping the compound score inside (-1, 1).
const alpha = 15

// Scorer is a lexicon-based sentiment scorer. Stateless and safe for
// concurrent use.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

// Score maps text to a compound sentiment in (-1, 1). Zero means neutral or
// no recognized vocabulary.
func (s *Scorer) Score(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			continue
		}
		// look back up to three tokens for negations and boosters
		for j := i - 1; j >= 0 && j >= i-3; j-- {
			if negations[tokens[j]] {
				valence = -valence
			} else if b, ok := boosters[tokens[j]]; ok {
				valence *= b
			}
		}
		sum += valence
	}

	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+alpha)
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}

var _ domsvc.SentimentScorer = (*Scorer)(nil)
