package response_engine

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

func loweredTrim(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func fieldsOf(text string) []string {
	return strings.Fields(text)
}

// followUpPronouns flag an utterance as referring back to earlier content.
var followUpPronouns = []string{"it", "that", "this", "they"}

// statementPronouns additionally include the object form.
var statementPronouns = []string{"it", "that", "this", "they", "them"}

func (t *Turn) hasPronoun(pronouns []string) bool {
	for _, p := range pronouns {
		if _, ok := t.Tokens[p]; ok {
			return true
		}
	}
	return false
}

// followUpQuestion handles questions that lean on a pronoun: the user is
// referring to something already discussed, so ask for clarification
// instead of repeating earlier messages.
func (e *Engine) followUpQuestion(t *Turn) (string, bool) {
	if t.Signals.IsQuestion && t.hasPronoun(followUpPronouns) {
		return t.Prefix + "I'd be happy to help with that. Could you clarify what specifically you'd like to know?", true
	}
	return "", false
}

func (e *Engine) greeting(t *Turn) (string, bool) {
	if !t.Signals.IsGreeting {
		return "", false
	}

	count := t.Memory.RecordGreeting()
	salutation := timeOfDayGreeting(t.Now.Hour())

	if count == 1 {
		return salutation + "! " + firstGreetingBody, true
	}
	return fmt.Sprintf("%s%s! Nice to see you again. What would you like to talk about?", t.Prefix, salutation), true
}

// timeOfDayGreeting picks a salutation from the local wall-clock hour.
func timeOfDayGreeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Hello"
	}
}

var directedAtBotPhrases = []string{"fuck you", "fuck off", "you", "your", "screw you", "shut up"}

func (e *Engine) profanity(t *Turn) (string, bool) {
	if !t.Signals.IsProfanity && !t.Signals.IsOffensive {
		return "", false
	}

	directedAtBot := textutil.ContainsAny(t.Lower, directedAtBotPhrases)
	if directedAtBot || t.Signals.IsOffensive {
		return t.Prefix + "I understand you might be frustrated. I'm here to help, not to upset you. Is there something specific that's bothering you? I'd like to assist you in a more constructive way.", true
	}
	return t.Prefix + "I can sense you're feeling strongly about something. Would you like to talk about what's on your mind? I'm here to listen and help if I can.", true
}

func (e *Engine) positiveFeedback(t *Turn) (string, bool) {
	if !t.Signals.IsPositiveFeedback {
		return "", false
	}
	return t.Prefix + "Thank you so much! That really means a lot to me. I'm glad I could help and that you're having a positive experience. Is there anything else you'd like to talk about or ask?", true
}

var aboutServiceWords = []string{"service", "bot", "chatbot", "you", "this"}

var negativeComplaintWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "disappoint", "suck",
	"not helpful", "not working", "does not work", "doesn't work",
}

// complaint only handles criticism that is both about the service and
// actually negative; anything softer falls through to later rules.
func (e *Engine) complaint(t *Turn) (string, bool) {
	if !t.Signals.IsComplaint && !t.Signals.IsCriticism {
		return "", false
	}

	aboutService := textutil.ContainsAny(t.Lower, aboutServiceWords)
	hasNegativeWord := textutil.ContainsAny(t.Lower, negativeComplaintWords)

	if (aboutService || t.Signals.IsCriticism) && hasNegativeWord {
		return t.Prefix + "I'm truly sorry to hear that you're disappointed with my service. Your feedback is important to me, and I want to help improve your experience. Could you tell me specifically what's not working well for you? I'd like to understand better so I can assist you more effectively.", true
	}
	return "", false
}

func (e *Engine) feeling(t *Turn) (string, bool) {
	word := t.Signals.Feeling
	if word == "" {
		return "", false
	}

	switch feelingBucket(word) {
	case bucketPositive:
		return fmt.Sprintf("%sThat's wonderful that you're feeling %s! I'm glad to hear that. What's making you feel this way? I'd love to hear more.", t.Prefix, word), true
	case bucketSad:
		return fmt.Sprintf("%sI'm sorry to hear you're feeling %s. That must be difficult. Would you like to talk about what's causing these feelings? I'm here to listen.", t.Prefix, word), true
	case bucketAnxious:
		return fmt.Sprintf("%sIt sounds like you're feeling %s. That can be really challenging. What's on your mind? I'm here to listen and help if I can.", t.Prefix, word), true
	case bucketTired:
		return fmt.Sprintf("%sI understand feeling %s. Sometimes it helps to talk things through. What's going on? I'm here to help.", t.Prefix, word), true
	}
	// Feeling words outside every bucket fall through silently.
	return "", false
}

func (e *Engine) nameCapture(t *Turn) (string, bool) {
	name := t.Signals.Name
	if name == "" {
		return "", false
	}
	t.Memory.SetName(name)
	return fmt.Sprintf("Nice to meet you, %s! I'll remember that. How are you doing today?", name), true
}

func (e *Engine) timeDate(t *Turn) (string, bool) {
	if !t.Signals.NeedsTime && !t.Signals.NeedsDate {
		return "", false
	}
	return timeDateReply(t.Lower, t.Now), true
}

func (e *Engine) calculation(t *Turn) (string, bool) {
	if !t.Signals.NeedsCalc {
		return "", false
	}
	if reply, ok := e.calculate(t.Input, t.Lower); ok {
		return reply, true
	}
	// No calculation handled; later rules get their chance.
	return "", false
}

func (e *Engine) apology(t *Turn) (string, bool) {
	if !t.Signals.IsApology {
		return "", false
	}
	if strings.Contains(t.Lower, "sorry") {
		return t.Prefix + "No worries at all! There's nothing to apologize for. What's on your mind?", true
	}
	return t.Prefix + "That's okay, no need to apologize. How can I help you?", true
}

var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:years?\s*old|turning)`),
	regexp.MustCompile(`turning\s+(\d+)`),
}

func (e *Engine) birthday(t *Turn) (string, bool) {
	if !t.Signals.IsBirthday {
		return "", false
	}

	ageText := ""
	for _, pattern := range agePatterns {
		if match := pattern.FindStringSubmatch(t.Lower); match != nil {
			ageText = fmt.Sprintf(" Happy %s birthday!", ordinal(match[1]))
			break
		}
	}

	return fmt.Sprintf("%sHappy Birthday! 🎉🎂🎈 That's wonderful!%s I hope you have an amazing day filled with joy and celebration. How are you planning to celebrate? I'd love to hear about it!", t.Prefix, ageText), true
}

// ordinal appends the English ordinal suffix to a number given as digits.
// 11, 12 and 13 take "th" despite their last digit.
func ordinal(digits string) string {
	suffix := "th"
	teens := len(digits) >= 2 && digits[len(digits)-2] == '1'
	if !teens {
		switch digits[len(digits)-1] {
		case '1':
			suffix = "st"
		case '2':
			suffix = "nd"
		case '3':
			suffix = "rd"
		}
	}
	return digits + suffix
}

func (e *Engine) specialEvent(t *Turn) (string, bool) {
	if !t.Signals.IsSpecialEvent {
		return "", false
	}

	switch {
	case strings.Contains(t.Lower, "anniversary"):
		return t.Prefix + "Congratulations on your anniversary! 🎉 That's a special milestone. How long have you been celebrating? I'd love to hear about it!", true
	case strings.Contains(t.Lower, "graduation"):
		return t.Prefix + "Congratulations on your graduation! 🎓 That's a huge achievement! What did you study? I'm so happy for you!", true
	case strings.Contains(t.Lower, "wedding") || strings.Contains(t.Lower, "engaged"):
		return t.Prefix + "Congratulations! 💍 That's such exciting news! Whether it's a wedding or engagement, that's a beautiful milestone. Tell me more about it!", true
	case strings.Contains(t.Lower, "promotion") || strings.Contains(t.Lower, "new job"):
		return t.Prefix + "Congratulations on your promotion/new job! 🎉 That's fantastic news! I'm so happy for you. How are you feeling about it?", true
	default:
		return t.Prefix + "That's wonderful news! Congratulations! 🎉 I'm so happy for you. Tell me more about it!", true
	}
}

func (e *Engine) goodbye(t *Turn) (string, bool) {
	if !t.Signals.IsGoodbye {
		return "", false
	}
	return t.Prefix + "Goodbye! It was nice talking with you. Take care!", true
}

func (e *Engine) thanks(t *Turn) (string, bool) {
	if !t.Signals.IsThanks {
		return "", false
	}
	return t.Prefix + "You're very welcome! I'm glad I could help. Is there anything else you'd like to know?", true
}

var positiveStatusWords = []string{
	"good", "great", "fine", "well", "okay", "ok", "alright", "excellent",
	"wonderful", "amazing", "doing well", "doing good",
}

func (e *Engine) reciprocalQuestion(t *Turn) (string, bool) {
	if !t.Signals.IsReciprocalQuestion {
		return "", false
	}
	if textutil.ContainsAny(t.Lower, positiveStatusWords) {
		return t.Prefix + "That's great to hear! I'm doing well, thank you for asking! I'm here and ready to help. Is there anything you'd like to talk about or ask?", true
	}
	return t.Prefix + "I'm doing great, thank you for asking! I'm here and ready to help. How are you doing today?", true
}

var positiveComparisonWords = []string{"better", "improved", "good", "great", "excellent"}
var negativeComparisonWords = []string{"worse", "declined", "not as good", "bad", "terrible"}

func (e *Engine) comparison(t *Turn) (string, bool) {
	if !t.Signals.IsComparison && !t.Signals.IsExperienceFeedback {
		return "", false
	}

	isPositive := textutil.ContainsAny(t.Lower, positiveComparisonWords)
	isNegative := textutil.ContainsAny(t.Lower, negativeComparisonWords)

	if t.Signals.IsExperienceFeedback {
		switch {
		case isPositive:
			return t.Prefix + "I'm glad to hear that your previous experience was positive! I appreciate you sharing that. Is there something specific from that experience that you'd like me to help recreate or improve upon?", true
		case isNegative:
			return t.Prefix + "I understand your concern about the experience. I'm sorry if things haven't been as good as before. Could you tell me more about what made the previous experience better? I'd like to learn from that and improve.", true
		default:
			return t.Prefix + "Thank you for sharing your experience. I'd like to understand better - what aspects of the experience would you like to discuss? I'm here to help improve things.", true
		}
	}

	switch {
	case isPositive:
		return t.Prefix + "That's great to hear! I'm glad things are better now. What specifically made it better? I'd love to understand what's working well.", true
	case isNegative:
		return t.Prefix + "I understand your concern. I'm sorry things aren't as good as they were. Could you tell me more about what changed or what's different now? I'd like to help improve the situation.", true
	default:
		return t.Prefix + "I see you're making a comparison. Could you tell me more about what you're comparing? I'd like to understand better so I can help.", true
	}
}

func (e *Engine) statement(t *Turn) (string, bool) {
	if t.Context.HasHistory && t.hasPronoun(statementPronouns) && len(t.Words) <= 5 {
		return t.Prefix + "I understand. Can you tell me more about that?", true
	}

	if len(t.Words) > 2 && hasContentWord(t.Words) {
		return t.Prefix + "I understand. That's interesting! Can you tell me more about that? How does that make you feel or what would you like to know about it?", true
	}
	return "", false
}

var statementStopwords = map[string]struct{}{
	"i": {}, "am": {}, "is": {}, "the": {}, "a": {}, "an": {}, "and": {},
	"or": {}, "but": {}, "to": {}, "for": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {},
}

func hasContentWord(words []string) bool {
	for _, word := range words {
		if _, stop := statementStopwords[strings.ToLower(word)]; !stop {
			return true
		}
	}
	return false
}

// defaultReply picks one of five acknowledgements, keyed by a FNV-1a hash
// of the input so the same text always produces the same reply.
func (e *Engine) defaultReply(t *Turn) (string, bool) {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(t.Input))
	index := hasher.Sum32() % uint32(len(defaultReplies))
	return t.Prefix + defaultReplies[index], true
}
