package metrics

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	log := logger.NewLogger(logger.Config{Level: logger.ErrorLevel, Format: "json", Output: io.Discard})
	return NewMetrics(log)
}

func TestNewMetrics(t *testing.T) {
	m := newTestMetrics(t)
	require.NotNil(t, m)
	assert.Zero(t, testutil.ToFloat64(m.MessagesTotal))
	assert.Zero(t, testutil.ToFloat64(m.TurnErrorsTotal))
}

func TestObserveTurn(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveTurn("greeting", "Positive", 3*time.Millisecond)
	m.ObserveTurn("greeting", "Neutral", 1*time.Millisecond)
	m.ObserveTurn("default", "Neutral", 2*time.Millisecond)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.MessagesTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.RuleMatches.WithLabelValues("greeting")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RuleMatches.WithLabelValues("default")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.SentimentLabels.WithLabelValues("Neutral")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SentimentLabels.WithLabelValues("Positive")))
}

func TestShutdownWithoutServe(t *testing.T) {
	m := newTestMetrics(t)
	assert.NoError(t, m.Shutdown(context.Background()))
}
