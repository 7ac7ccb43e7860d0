// Package response_engine resolves the signals extracted from one utterance
// into exactly one scripted reply. The heart of the package is an ordered
// rule table: rules are evaluated top to bottom and the first rule that
// produces a reply wins; later rules are never consulted within a turn.
package response_engine

import (
	"time"

	"github.com/mwhitfield/sentiment_chatbot/internal/memory_store"
	"github.com/mwhitfield/sentiment_chatbot/internal/signal_extractor"
	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

// Turn carries everything a rule may consult for one utterance.
type Turn struct {
	Input   string
	Lower   string
	Words   []string            // whitespace-split words of the input
	Tokens  map[string]struct{} // lower-cased token set
	Signals signal_extractor.Bundle
	Context memory_store.ContextInfo
	Memory  *memory_store.Memory

	// Prefix is the learned-name prefix, captured before any rule runs so
	// a name learned this turn does not prefix its own acknowledgement.
	Prefix string
	Now    time.Time
}

// Rule is one (name, handler) pair of the priority policy. Apply returns
// the reply and true when the rule handles the turn.
type Rule struct {
	Name  string
	Apply func(e *Engine, t *Turn) (string, bool)
}

// Config holds engine configuration.
type Config struct {
	// Clock supplies wall-clock time for greeting salutations and
	// time/date answers. Defaults to time.Now.
	Clock func() time.Time
	// MaxExpressionLength bounds the arithmetic fallback evaluator input.
	MaxExpressionLength int
}

// Engine is the response selector.
type Engine struct {
	rules      []Rule
	now        func() time.Time
	maxExprLen int
}

// New creates an Engine with the full priority rule table.
func New(cfg Config) *Engine {
	e := &Engine{
		now:        cfg.Clock,
		maxExprLen: cfg.MaxExpressionLength,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.maxExprLen <= 0 {
		e.maxExprLen = defaultMaxExpressionLength
	}
	e.rules = ruleTable()
	return e
}

// RuleNames returns the rule names in evaluation order. The order itself is
// part of the engine's contract and is asserted by tests.
func (e *Engine) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Respond evaluates the rule table for one utterance and returns the reply
// together with the name of the matched rule. As a pre-step it records
// likes, characteristics and discussed topics into memory. The final
// default rule always matches, so Respond always returns a reply.
func (e *Engine) Respond(
	text string,
	signals signal_extractor.Bundle,
	ctx memory_store.ContextInfo,
	mem *memory_store.Memory,
) (reply string, rule string) {
	mem.RecordFacts(text)

	t := &Turn{
		Input:   text,
		Lower:   loweredTrim(text),
		Words:   fieldsOf(text),
		Tokens:  textutil.TokenSet(text),
		Signals: signals,
		Context: ctx,
		Memory:  mem,
		Prefix:  mem.NamePrefix(),
		Now:     e.now(),
	}

	for _, r := range e.rules {
		if response, ok := r.Apply(e, t); ok {
			return response, r.Name
		}
	}

	// Unreachable: the default rule always matches.
	return t.Prefix + "I'm listening.", "default"
}

// ruleTable is the total priority order of the response policy.
func ruleTable() []Rule {
	return []Rule{
		{Name: "follow_up_question", Apply: (*Engine).followUpQuestion},
		{Name: "greeting", Apply: (*Engine).greeting},
		{Name: "profanity", Apply: (*Engine).profanity},
		{Name: "positive_feedback", Apply: (*Engine).positiveFeedback},
		{Name: "complaint", Apply: (*Engine).complaint},
		{Name: "feeling", Apply: (*Engine).feeling},
		{Name: "name_capture", Apply: (*Engine).nameCapture},
		{Name: "time_date", Apply: (*Engine).timeDate},
		{Name: "calculation", Apply: (*Engine).calculation},
		{Name: "apology", Apply: (*Engine).apology},
		{Name: "birthday", Apply: (*Engine).birthday},
		{Name: "special_event", Apply: (*Engine).specialEvent},
		{Name: "goodbye", Apply: (*Engine).goodbye},
		{Name: "thanks", Apply: (*Engine).thanks},
		{Name: "reciprocal_question", Apply: (*Engine).reciprocalQuestion},
		{Name: "comparison", Apply: (*Engine).comparison},
		{Name: "question", Apply: (*Engine).question},
		{Name: "statement", Apply: (*Engine).statement},
		{Name: "default", Apply: (*Engine).defaultReply},
	}
}
