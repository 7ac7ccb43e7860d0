package response_engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/sentiment_chatbot/internal/memory_store"
	"github.com/mwhitfield/sentiment_chatbot/internal/signal_extractor"
)

// fixedClock is a Monday afternoon.
var fixedClock = func() time.Time {
	return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Config{Clock: fixedClock})
}

// respond runs the full extraction pipeline for one utterance, the way a
// session does.
func respond(e *Engine, mem *memory_store.Memory, history *memory_store.History, text string) (string, string) {
	signals := signal_extractor.Extract(text)
	ctx := memory_store.Resolve(text, history, 8)
	return e.Respond(text, signals, ctx, mem)
}

func TestRuleOrder(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, []string{
		"follow_up_question",
		"greeting",
		"profanity",
		"positive_feedback",
		"complaint",
		"feeling",
		"name_capture",
		"time_date",
		"calculation",
		"apology",
		"birthday",
		"special_event",
		"goodbye",
		"thanks",
		"reciprocal_question",
		"comparison",
		"question",
		"statement",
		"default",
	}, e.RuleNames())
}

func TestGreeting(t *testing.T) {
	e := newTestEngine(t)
	mem := memory_store.New()
	history := memory_store.NewHistory()

	reply, rule := respond(e, mem, history, "Hello")
	assert.Equal(t, "greeting", rule)
	assert.Equal(t, "Good afternoon! "+firstGreetingBody, reply)

	reply, rule = respond(e, mem, history, "hi again")
	assert.Equal(t, "greeting", rule)
	assert.Equal(t, "Good afternoon! Nice to see you again. What would you like to talk about?", reply)
}

func TestTimeOfDayGreeting(t *testing.T) {
	assert.Equal(t, "Good morning", timeOfDayGreeting(5))
	assert.Equal(t, "Good morning", timeOfDayGreeting(11))
	assert.Equal(t, "Good afternoon", timeOfDayGreeting(12))
	assert.Equal(t, "Good evening", timeOfDayGreeting(17))
	assert.Equal(t, "Hello", timeOfDayGreeting(21))
	assert.Equal(t, "Hello", timeOfDayGreeting(3))
}

func TestNameCaptureAndPrefix(t *testing.T) {
	e := newTestEngine(t)
	mem := memory_store.New()
	history := memory_store.NewHistory()

	reply, rule := respond(e, mem, history, "My name is Sam")
	assert.Equal(t, "name_capture", rule)
	assert.Equal(t, "Nice to meet you, Sam! I'll remember that. How are you doing today?", reply)
	assert.Equal(t, "Sam", mem.Name())

	// Later replies carry the learned name.
	reply, rule = respond(e, mem, history, "bye")
	assert.Equal(t, "goodbye", rule)
	assert.Equal(t, "Sam, Goodbye! It was nice talking with you. Take care!", reply)
}

func TestFeelingResponses(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		input    string
		wantRule string
		contains string
	}{
		{"sad", "I am feeling sad today", "feeling", "I'm sorry to hear you're feeling sad"},
		{"happy", "I'm feeling happy", "feeling", "That's wonderful that you're feeling happy"},
		{"anxious", "feeling worried lately", "feeling", "It sounds like you're feeling worried"},
		{"tired", "so tired right now", "feeling", "I understand feeling tired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), tt.input)
			assert.Equal(t, tt.wantRule, rule)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestFollowUpQuestion(t *testing.T) {
	e := newTestEngine(t)
	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "what do you think about that?")
	assert.Equal(t, "follow_up_question", rule)
	assert.Contains(t, reply, "Could you clarify")
}

func TestTimeDate(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "what time")
	assert.Equal(t, "time_date", rule)
	assert.Equal(t, "The current time is 02:30 PM.", reply)

	reply, rule = respond(e, memory_store.New(), memory_store.NewHistory(), "what's the date")
	assert.Equal(t, "time_date", rule)
	assert.Equal(t, "Today's date is Monday, March 10, 2025.", reply)
}

func TestTimeDateReply(t *testing.T) {
	now := fixedClock()

	assert.Equal(t, "The current time is 02:30 PM.", timeDateReply("what time is it", now))
	assert.Equal(t, "Today's date is Monday, March 10, 2025.", timeDateReply("what day is today", now))
	assert.Equal(t, "Today is Monday.", timeDateReply("which day do we have", now))
	assert.Equal(t,
		"The current time is 02:30 PM and today's date is Monday, March 10, 2025.",
		timeDateReply("time date", now))
}

func TestProfanity(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "this is damn slow")
	assert.Equal(t, "profanity", rule)
	assert.Contains(t, reply, "feeling strongly")

	reply, rule = respond(e, memory_store.New(), memory_store.NewHistory(), "oh shut up")
	assert.Equal(t, "profanity", rule)
	assert.Contains(t, reply, "frustrated")
}

func TestPositiveFeedback(t *testing.T) {
	e := newTestEngine(t)
	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "you are amazing")
	assert.Equal(t, "positive_feedback", rule)
	assert.Contains(t, reply, "Thank you so much")
}

func TestComplaint(t *testing.T) {
	e := newTestEngine(t)
	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "your service is terrible")
	assert.Equal(t, "complaint", rule)
	assert.Contains(t, reply, "sorry to hear that you're disappointed")
}

func TestBirthday(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "today is my birthday")
	assert.Equal(t, "birthday", rule)
	assert.Contains(t, reply, "Happy Birthday! 🎉🎂🎈")
	assert.NotContains(t, reply, "Happy th")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "today is my birthday, turning 30")
	assert.Contains(t, reply, "Happy 30th birthday!")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "my birthday today, 21 years old")
	assert.Contains(t, reply, "Happy 21st birthday!")
}

func TestSpecialEvent(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		input    string
		contains string
	}{
		{"it is our anniversary", "Congratulations on your anniversary! 🎉"},
		{"my graduation was yesterday", "Congratulations on your graduation! 🎓"},
		{"we got engaged", "Congratulations! 💍"},
		{"I got a new job", "promotion/new job"},
	}

	for _, tt := range tests {
		reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), tt.input)
		assert.Equal(t, "special_event", rule, tt.input)
		assert.Contains(t, reply, tt.contains)
	}
}

func TestThanks(t *testing.T) {
	e := newTestEngine(t)
	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "thanks a lot")
	assert.Equal(t, "thanks", rule)
	assert.Contains(t, reply, "You're very welcome")
}

func TestReciprocalQuestion(t *testing.T) {
	e := newTestEngine(t)
	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "I'm doing well, and you?")
	assert.Equal(t, "reciprocal_question", rule)
	assert.Contains(t, reply, "I'm doing well, thank you for asking")
}

func TestComparison(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "my experience was better before")
	assert.Equal(t, "comparison", rule)
	assert.Contains(t, reply, "previous experience was positive")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "the product got worse over months")
	assert.Contains(t, reply, "sorry things aren't as good as they were")
}

func TestQuestionDispatch(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "what is love")
	assert.Equal(t, "question", rule)
	assert.Contains(t, reply, "You're asking about 'love'")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "what is sentiment analysis about")
	assert.Contains(t, reply, "Sentiment analysis is a technique")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "what can you do")
	assert.Contains(t, reply, "track mood trends")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "who are you")
	assert.Contains(t, reply, "sentiment analysis chatbot designed to understand emotions")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "how are you")
	assert.Contains(t, reply, "I'm doing great, thank you for asking")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "why is the sky blue")
	assert.Contains(t, reply, "You're asking why")

	reply, _ = respond(e, memory_store.New(), memory_store.NewHistory(), "where is the library")
	assert.Contains(t, reply, "location")
}

func TestStatement(t *testing.T) {
	e := newTestEngine(t)

	reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "the weather has been surprisingly warm")
	assert.Equal(t, "statement", rule)
	assert.Contains(t, reply, "Can you tell me more about that?")

	// Short pronoun statements with history get the brief acknowledgement.
	history := memory_store.NewHistory()
	history.Append(memory_store.Entry{UserText: "i bought a guitar yesterday", BotText: "nice"})
	reply, rule = respond(e, memory_store.New(), history, "i really enjoy playing it")
	assert.Equal(t, "statement", rule)
	assert.Equal(t, "I understand. Can you tell me more about that?", reply)
}

func TestDefaultReplyIsDeterministic(t *testing.T) {
	e := newTestEngine(t)

	first, rule := respond(e, memory_store.New(), memory_store.NewHistory(), "hm")
	require.Equal(t, "default", rule)
	second, _ := respond(e, memory_store.New(), memory_store.NewHistory(), "hm")
	assert.Equal(t, first, second)
	assert.Contains(t, defaultReplies, first)
}

func TestRespondAlwaysReplies(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{"x", "zz", "...", "42", "ok then"}
	for _, input := range inputs {
		reply, rule := respond(e, memory_store.New(), memory_store.NewHistory(), input)
		assert.NotEmpty(t, reply, input)
		assert.NotEmpty(t, rule, input)
	}
}
