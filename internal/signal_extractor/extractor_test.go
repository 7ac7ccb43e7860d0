package signal_extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"my name is", "My name is Alex", "Alex"},
		{"call me", "call me sam", "Sam"},
		{"name's", "name's jordan", "Jordan"},
		{"i go by", "i go by Max", "Max"},
		{"loose i'm", "I'm Alice", "Alice"},
		{"loose i am", "i am Robert", "Robert"},
		{"blacklisted strict", "my name is good", ""},
		{"blacklisted loose", "I'm wondering about something", ""},
		{"too short loose", "I'm Al", ""},
		{"no name", "the weather is nice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input).Name)
		})
	}
}

func TestFeelingSuppressesName(t *testing.T) {
	b := Extract("I'm fine")
	assert.Equal(t, "fine", b.Feeling)
	assert.Empty(t, b.Name)

	b = Extract("I'm feeling happy today")
	assert.Equal(t, "happy", b.Feeling)
	assert.Empty(t, b.Name)
}

func TestExtractFlags(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		verify func(t *testing.T, b Bundle)
	}{
		{"greeting", "Hello there", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsGreeting)
			assert.False(t, b.IsProfanity)
		}},
		{"goodbye", "goodbye for now", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsGoodbye)
		}},
		{"thanks", "thanks a lot", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsThanks)
		}},
		{"question by word", "what is the weather", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsQuestion)
		}},
		{"question by mark", "you like pizza?", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsQuestion)
		}},
		{"apology", "sorry about that", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsApology)
		}},
		{"birthday", "today is my birthday", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsBirthday)
		}},
		{"special event", "I got a promotion at work", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsSpecialEvent)
		}},
		{"reciprocal", "I'm doing well, what about you", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsReciprocalQuestion)
		}},
		{"complaint", "this is terrible", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsComplaint)
		}},
		{"criticism", "your service is not working", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsCriticism)
		}},
		{"positive feedback", "you are amazing", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsPositiveFeedback)
		}},
		{"comparison", "it was better before", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsComparison)
		}},
		{"experience feedback", "my experience was good", func(t *testing.T, b Bundle) {
			assert.True(t, b.IsExperienceFeedback)
		}},
		{"time", "what time is it", func(t *testing.T, b Bundle) {
			assert.True(t, b.NeedsTime)
		}},
		{"date", "what's the date today", func(t *testing.T, b Bundle) {
			assert.True(t, b.NeedsDate)
		}},
		{"calc words", "what is 5 plus 3", func(t *testing.T, b Bundle) {
			assert.True(t, b.NeedsCalc)
		}},
		{"calc digits", "10 / 2", func(t *testing.T, b Bundle) {
			assert.True(t, b.NeedsCalc)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, Extract(tt.input))
		})
	}
}

func TestProfanityWordBoundaries(t *testing.T) {
	assert.False(t, Extract("hello world").IsProfanity)
	assert.False(t, Extract("I passed my assessment").IsProfanity)
	assert.True(t, Extract("what the hell").IsProfanity)
	assert.True(t, Extract("this is damn slow").IsProfanity)
}

func TestOffensiveDetection(t *testing.T) {
	b := Extract("oh shut up")
	assert.True(t, b.IsOffensive)
}

func TestExtractEmptyInput(t *testing.T) {
	b := Extract("")
	assert.Equal(t, Bundle{}, b)
}

func TestExtractIsDeterministic(t *testing.T) {
	input := "Hello, my name is Alex and I love hiking!"
	assert.Equal(t, Extract(input), Extract(input))
}
