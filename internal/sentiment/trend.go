package sentiment

// Trend is the coarse direction of sentiment across a conversation.
type Trend string

const (
	Improving  Trend = "improving"
	Declining  Trend = "declining"
	Consistent Trend = "consistent"
)

// MoodTrend compares the average polarity of the first and second halves of
// the label sequence. Sequences shorter than 2 are always consistent.
func MoodTrend(labels []Label) Trend {
	if len(labels) < 2 {
		return Consistent
	}

	values := make([]float64, len(labels))
	for i, label := range labels {
		switch label {
		case Positive:
			values[i] = 1
		case Negative:
			values[i] = -1
		}
	}

	mid := len(values) / 2
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])

	switch {
	case secondAvg > firstAvg+0.1:
		return Improving
	case secondAvg < firstAvg-0.1:
		return Declining
	default:
		return Consistent
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
