// Package sentiment scores the polarity of user messages and derives
// conversation-level mood information from the per-message labels.
package sentiment

import (
	"math"
	"strings"

	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

// Label is a 3-way sentiment classification of one message.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Classification thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scores holds the polarity mass of one message. Compound is bounded to
// [-1, 1]; Pos, Neu and Neg are proportions in [0, 1].
type Scores struct {
	Compound float64
	Pos      float64
	Neu      float64
	Neg      float64
}

// Scorer maps a text string to polarity scores. The response engine and the
// console only ever consume this interface, so the backend is swappable.
type Scorer interface {
	Score(text string) Scores
}

// Analyzer is the built-in lexicon-based Scorer.
type Analyzer struct{}

// NewAnalyzer returns the built-in lexicon analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Score computes polarity scores for a message. Empty or whitespace-only
// input short-circuits to an all-neutral result without scoring.
func (a *Analyzer) Score(text string) Scores {
	if strings.TrimSpace(text) == "" {
		return Scores{Compound: 0, Pos: 0, Neu: 1, Neg: 0}
	}

	tokens := textutil.Tokens(text)

	var sum, posSum, negSum float64
	var neuCount int

	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			if !isModifier(tok) {
				neuCount++
			}
			continue
		}

		// Boosters and negations in the preceding window shift or flip
		// the valence of the scored word.
		for back := 1; back <= 3 && i-back >= 0; back++ {
			prev := tokens[i-back]
			if boost, ok := boosters[prev]; ok && back <= 2 {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
			if _, ok := negations[prev]; ok {
				valence *= negationFactor
			}
		}

		sum += valence
		if valence > 0 {
			posSum += valence + 1
		} else if valence < 0 {
			negSum += math.Abs(valence) + 1
		} else {
			neuCount++
		}
	}

	// Exclamation marks amplify whatever polarity is already present.
	if bangs := strings.Count(text, "!"); bangs > 0 && sum != 0 {
		if bangs > 3 {
			bangs = 3
		}
		emphasis := float64(bangs) * exclamationBoost
		if sum > 0 {
			sum += emphasis
		} else {
			sum -= emphasis
		}
	}

	total := posSum + negSum + float64(neuCount)
	scores := Scores{Compound: normalize(sum)}
	if total > 0 {
		scores.Pos = round3(posSum / total)
		scores.Neg = round3(negSum / total)
		scores.Neu = round3(float64(neuCount) / total)
	} else {
		scores.Neu = 1
	}
	return scores
}

// normalize maps an unbounded valence sum into [-1, 1].
func normalize(sum float64) float64 {
	norm := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if norm > 1 {
		return 1
	}
	if norm < -1 {
		return -1
	}
	return round4(norm)
}

func isModifier(tok string) bool {
	if _, ok := boosters[tok]; ok {
		return true
	}
	_, ok := negations[tok]
	return ok
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// ClassifyScores converts a compound score into a Label.
func ClassifyScores(s Scores) Label {
	switch {
	case s.Compound >= positiveThreshold:
		return Positive
	case s.Compound <= negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Classify scores a single message and returns its label. Empty input is
// Neutral without invoking the scorer.
func Classify(scorer Scorer, message string) Label {
	if strings.TrimSpace(message) == "" {
		return Neutral
	}
	return ClassifyScores(scorer.Score(message))
}

// ClassifyOverall labels the whole conversation by scoring all user
// messages joined into one text.
func ClassifyOverall(scorer Scorer, messages []string) Label {
	if len(messages) == 0 {
		return Neutral
	}
	return Classify(scorer, strings.Join(messages, " "))
}
