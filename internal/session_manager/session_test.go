package session_manager

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/sentiment_chatbot/internal/response_engine"
	"github.com/mwhitfield/sentiment_chatbot/internal/sentiment"
	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	engine := response_engine.New(response_engine.Config{
		Clock: func() time.Time {
			return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
		},
	})

	s, err := New(Config{
		Engine:          engine,
		Scorer:          sentiment.NewAnalyzer(),
		Logger:          logger.NewLogger(logger.Config{Level: logger.ErrorLevel, Format: "json", Output: io.Discard}),
		ContextLookback: 8,
	})
	require.NoError(t, err)
	return s
}

func TestNewRequiresEngineAndLogger(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{Engine: response_engine.New(response_engine.Config{})})
	assert.Error(t, err)
}

func TestSessionID(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRespondRejectsEmptyInput(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Respond("")
	assert.Error(t, err)
	_, err = s.Respond("   \t ")
	assert.Error(t, err)

	// Rejected turns leave no trace in the history.
	assert.Zero(t, s.TurnCount())
}

func TestConversationFlow(t *testing.T) {
	s := newTestSession(t)

	result, err := s.Respond("Hello")
	require.NoError(t, err)
	assert.Equal(t, "greeting", result.Rule)
	assert.Equal(t, sentiment.Neutral, result.Label)

	result, err = s.Respond("My name is Sam")
	require.NoError(t, err)
	assert.Equal(t, "name_capture", result.Rule)
	assert.Contains(t, result.Reply, "Nice to meet you, Sam!")

	result, err = s.Respond("I am feeling sad today")
	require.NoError(t, err)
	assert.Equal(t, "feeling", result.Rule)
	assert.Equal(t, sentiment.Negative, result.Label)
	// The learned name prefixes replies from here on.
	assert.Contains(t, result.Reply, "Sam, ")

	result, err = s.Respond("what time is it")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reply, "Sam, "))

	result, err = s.Respond("bye")
	require.NoError(t, err)
	assert.Equal(t, "goodbye", result.Rule)
	assert.Equal(t, "Sam, Goodbye! It was nice talking with you. Take care!", result.Reply)

	assert.Equal(t, 5, s.TurnCount())

	transcript := s.Transcript()
	require.Len(t, transcript, 5)
	assert.Equal(t, "Hello", transcript[0].UserText)
	assert.Equal(t, "bye", transcript[4].UserText)
}

func TestRespondSanitizesInput(t *testing.T) {
	s := newTestSession(t)

	result, err := s.Respond("  my   name   is   Alex  ")
	require.NoError(t, err)
	assert.Equal(t, "name_capture", result.Rule)
	assert.Equal(t, "my name is Alex", s.Transcript()[0].UserText)
}

func TestSummarize(t *testing.T) {
	s := newTestSession(t)

	for _, msg := range []string{"Hello", "My name is Sam", "I am feeling sad today", "bye"} {
		_, err := s.Respond(msg)
		require.NoError(t, err)
	}

	sum := s.Summarize()
	assert.Equal(t, 4, sum.Turns)
	assert.Equal(t, sentiment.Negative, sum.Overall)
	assert.Equal(t, sentiment.Declining, sum.Trend)
	assert.Equal(t, 3, sum.Distribution[sentiment.Neutral])
	assert.Equal(t, 1, sum.Distribution[sentiment.Negative])
	assert.Len(t, sum.Entries, 4)
}

func TestSummarizeEmptySession(t *testing.T) {
	s := newTestSession(t)
	sum := s.Summarize()
	assert.Zero(t, sum.Turns)
	assert.Equal(t, sentiment.Neutral, sum.Overall)
	assert.Equal(t, sentiment.Consistent, sum.Trend)
}

func TestSessionWithoutScorer(t *testing.T) {
	engine := response_engine.New(response_engine.Config{})
	s, err := New(Config{
		Engine: engine,
		Logger: logger.NewLogger(logger.Config{Level: logger.ErrorLevel, Format: "json", Output: io.Discard}),
	})
	require.NoError(t, err)

	result, err := s.Respond("I am feeling sad today")
	require.NoError(t, err)
	assert.Equal(t, sentiment.Neutral, result.Label)
	assert.Equal(t, sentiment.Consistent, s.Summarize().Trend)
}
