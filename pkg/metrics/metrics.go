// Package metrics provides Prometheus metrics collection for conversation
// turns, with an optional HTTP listener exposing /metrics and /healthz.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
)

const subsystem = "chat"

// Metrics collects counters for the conversation loop.
type Metrics struct {
	reg *prometheus.Registry

	MessagesTotal     prometheus.Counter
	RuleMatches       *prometheus.CounterVec
	SentimentLabels   *prometheus.CounterVec
	TurnErrorsTotal   prometheus.Counter
	TurnDurationHisto prometheus.Histogram

	server *http.Server
	log    logger.Logger
}

// NewMetrics creates a Metrics instance with all collectors registered.
func NewMetrics(l logger.Logger) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		log: l,
	}

	m.MessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "messages_total",
		Help:      "Total user messages processed",
	})
	m.RuleMatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "rule_matches_total",
		Help:      "Response rule matches by rule name",
	}, []string{"rule"})
	m.SentimentLabels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "sentiment_total",
		Help:      "Per-message sentiment labels",
	}, []string{"label"})
	m.TurnErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "turn_errors_total",
		Help:      "Turns aborted by an unexpected failure",
	})
	m.TurnDurationHisto = prometheus.NewHistogram(prometheus.HistogramOpts{
		Subsystem: subsystem,
		Name:      "turn_duration_seconds",
		Help:      "Time spent producing a reply",
		Buckets:   prometheus.DefBuckets,
	})

	m.reg.MustRegister(
		m.MessagesTotal,
		m.RuleMatches,
		m.SentimentLabels,
		m.TurnErrorsTotal,
		m.TurnDurationHisto,
	)

	return m
}

// ObserveTurn records a completed turn.
func (m *Metrics) ObserveTurn(rule, label string, elapsed time.Duration) {
	m.MessagesTotal.Inc()
	m.RuleMatches.WithLabelValues(rule).Inc()
	m.SentimentLabels.WithLabelValues(label).Inc()
	m.TurnDurationHisto.Observe(elapsed.Seconds())
}

// Serve starts the metrics listener on the given port. It returns
// immediately; listener errors are logged.
func (m *Metrics) Serve(port int) {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	m.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		m.log.Info("Metrics listener started", logger.IntField("port", port))
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.log.Error("Metrics listener failed", logger.ErrorField(err))
		}
	}()
}

// Shutdown stops the metrics listener if one was started.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
