package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
)

var wordBoundaryPattern = regexp.MustCompile(`\W+`)

// Sentiment counts polarity-bearing words against the fixed lexicons.
// Score is (p-n)/(p+n) in [-1, 1], 0 when no polarity words occur.
// Confidence rewards whichever is stronger, a decisive skew or a high
// absolute polarity-word count, each capped at 0.9.
func (e *Engine) Sentiment(text string) domain.Sentiment {
	words := wordBoundaryPattern.Split(strings.ToLower(text), -1)

	var positive, negative int
	for _, word := range words {
		if _, ok := positiveWords[word]; ok {
			positive++
		} else if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	total := positive + negative
	score := 0.0
	if total > 0 {
		score = float64(positive-negative) / float64(total)
	}

	label := domain.SentimentNeutral
	switch {
	case score > 0.1:
		label = domain.SentimentPositive
	case score < -0.1:
		label = domain.SentimentNegative
	}

	confidenceFromScore := math.Min(math.Abs(score)*1.5, 0.9)
	confidenceFromCount := math.Min(float64(total)/20, 0.9)

	return domain.Sentiment{
		Score:      score,
		Label:      label,
		Confidence: math.Max(confidenceFromScore, confidenceFromCount),
	}
}
