// Package session_manager owns the per-conversation state: the learned
// memory, the turn history and the sentiment record. A Session ties the
// signal extractor, the response engine and the sentiment scorer into a
// single Respond pipeline.
package session_manager

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/sentiment_chatbot/internal/memory_store"
	"github.com/mwhitfield/sentiment_chatbot/internal/response_engine"
	"github.com/mwhitfield/sentiment_chatbot/internal/sentiment"
	"github.com/mwhitfield/sentiment_chatbot/internal/signal_extractor"
	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
	"github.com/mwhitfield/sentiment_chatbot/pkg/metrics"
	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

// Config holds everything a Session needs. Engine and Logger are required;
// Scorer may be nil when per-message sentiment is disabled.
type Config struct {
	Engine  *response_engine.Engine
	Scorer  sentiment.Scorer
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// ContextLookback is how many prior turns the context resolver scans.
	ContextLookback int
}

// TurnResult is the outcome of one user utterance.
type TurnResult struct {
	Reply  string
	Rule   string
	Label  sentiment.Label
	Scores sentiment.Scores
}

// Session is one conversation. All methods are safe for concurrent use,
// though the console drives a session from a single goroutine.
type Session struct {
	id      string
	cfg     Config
	mu      sync.Mutex
	memory  *memory_store.Memory
	history *memory_store.History
}

// New creates a Session with a fresh memory and history.
func New(cfg Config) (*Session, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("response engine is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.ContextLookback <= 0 {
		cfg.ContextLookback = 8
	}

	return &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		memory:  memory_store.New(),
		history: memory_store.NewHistory(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Respond runs the full pipeline for one raw utterance: sanitize, extract
// signals, resolve context against the history, pick a reply and score the
// sentiment, then append the turn to the history.
func (s *Session) Respond(raw string) (TurnResult, error) {
	text := textutil.Sanitize(raw)
	if text == "" {
		return TurnResult{}, fmt.Errorf("empty input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()

	signals := signal_extractor.Extract(text)
	ctx := memory_store.Resolve(text, s.history, s.cfg.ContextLookback)
	reply, rule := s.cfg.Engine.Respond(text, signals, ctx, s.memory)

	result := TurnResult{
		Reply: reply,
		Rule:  rule,
		Label: sentiment.Neutral,
	}
	if s.cfg.Scorer != nil {
		result.Scores = s.cfg.Scorer.Score(text)
		result.Label = sentiment.ClassifyScores(result.Scores)
	}

	s.history.Append(memory_store.Entry{
		UserText:  text,
		BotText:   reply,
		Sentiment: result.Label,
	})

	if s.cfg.Metrics != nil {
		s.cfg.Metrics.ObserveTurn(rule, string(result.Label), time.Since(started))
	}
	s.cfg.Logger.Debug("turn handled",
		logger.SessionIDField(s.id),
		logger.RuleField(rule),
		logger.SentimentField(string(result.Label)),
		logger.IntField("turns", s.history.Len()),
	)

	return result, nil
}

// TurnCount returns the number of completed turns.
func (s *Session) TurnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// Transcript returns the full turn history, oldest first.
func (s *Session) Transcript() []memory_store.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.All()
}

// Summary describes a finished conversation.
type Summary struct {
	Turns        int
	Overall      sentiment.Label
	Trend        sentiment.Trend
	Entries      []memory_store.Entry
	Distribution map[sentiment.Label]int
}

// Summarize computes the end-of-conversation report. Overall sentiment is
// scored over the concatenated user messages, not averaged per turn. The
// trend is only meaningful when a scorer is configured.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	labels := s.history.SentimentLabels()
	dist := make(map[sentiment.Label]int, 3)
	for _, l := range labels {
		dist[l]++
	}

	sum := Summary{
		Turns:        s.history.Len(),
		Overall:      sentiment.Neutral,
		Trend:        sentiment.Consistent,
		Entries:      s.history.All(),
		Distribution: dist,
	}
	if s.cfg.Scorer != nil {
		sum.Overall = sentiment.ClassifyOverall(s.cfg.Scorer, s.history.UserMessages())
		sum.Trend = sentiment.MoodTrend(labels)
	}
	return sum
}
