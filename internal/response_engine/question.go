package response_engine

import (
	"fmt"
	"strings"
)

// question dispatches by leading question word with nested sub-cases. If no
// question word matches (a bare trailing "?"), the turn falls through to
// the statement rule.
func (e *Engine) question(t *Turn) (string, bool) {
	if !t.Signals.IsQuestion {
		return "", false
	}

	// Late pronoun check: "them" is not a follow-up trigger for the first
	// rule but still reads as a reference here.
	if t.hasPronoun(statementPronouns) {
		return t.Prefix + "I'd be happy to help with that. Could you clarify what specifically you'd like to know?", true
	}

	switch {
	case strings.Contains(t.Lower, "what"):
		return e.whatQuestion(t), true
	case strings.Contains(t.Lower, "who"):
		return e.whoQuestion(t), true
	case strings.Contains(t.Lower, "how"):
		return e.howQuestion(t), true
	case strings.Contains(t.Lower, "why"):
		return e.whyQuestion(t), true
	case strings.Contains(t.Lower, "where"):
		return e.whereQuestion(t), true
	case strings.Contains(t.Lower, "when"):
		return e.whenQuestion(t), true
	}
	return "", false
}

// stripPhrases removes every occurrence of the given phrases and trims
// spaces and question marks, leaving the topic the user asked about.
func stripPhrases(lower string, phrases ...string) string {
	for _, phrase := range phrases {
		lower = strings.ReplaceAll(lower, phrase, "")
	}
	return strings.Trim(lower, " ?")
}

func (e *Engine) whatQuestion(t *Turn) string {
	switch {
	case strings.Contains(t.Lower, "what time") || strings.Contains(t.Lower, "what's the time"):
		return timeDateReply(t.Lower, t.Now)
	case strings.Contains(t.Lower, "what date") || strings.Contains(t.Lower, "what's the date"):
		return timeDateReply(t.Lower, t.Now)
	case strings.Contains(t.Lower, "what is") || strings.Contains(t.Lower, "what's"):
		topic := stripPhrases(t.Lower, "what is", "what's")
		switch {
		case strings.Contains(topic, "sentiment") || strings.Contains(topic, "feeling"):
			return t.Prefix + "Sentiment analysis is a technique that identifies and extracts emotional tone from text. I use a weighted word lexicon to decide whether messages are positive, negative, or neutral. It's quite fascinating!"
		case strings.Contains(topic, "your name") || strings.Contains(topic, "you called"):
			return t.Prefix + "I'm a sentiment analysis chatbot! I help analyze emotions in conversations and can answer various questions. What would you like to know?"
		case topic != "":
			return fmt.Sprintf("%sYou're asking about '%s'. That's interesting! Could you tell me more specifically what you'd like to know about it?", t.Prefix, topic)
		default:
			return t.Prefix + "I'm here to help! Could you be more specific about what you'd like to know?"
		}
	case strings.Contains(t.Lower, "what do you") || strings.Contains(t.Lower, "what can you"):
		return t.Prefix + "I'm a sentiment analysis chatbot. I can: analyze emotions in your messages, answer questions, tell you the current time and date, perform calculations, have conversations, and track mood trends. What would you like to try?"
	default:
		return fmt.Sprintf("%sYou asked: '%s'. Could you rephrase that or provide more context? I'd like to give you a better answer.", t.Prefix, t.Input)
	}
}

func (e *Engine) whoQuestion(t *Turn) string {
	switch {
	case strings.Contains(t.Lower, "who are you"):
		return t.Prefix + "I'm a sentiment analysis chatbot designed to understand emotions in conversations. I analyze the emotional tone of every message and can help with various questions. How can I assist you?"
	case strings.Contains(t.Lower, "who is") || strings.Contains(t.Lower, "who's"):
		person := stripPhrases(t.Lower, "who is", "who's")
		if person != "" {
			return fmt.Sprintf("%sYou're asking about '%s'. I don't have specific information about individuals, but I'm here to chat and help with other questions!", t.Prefix, person)
		}
		return t.Prefix + "Could you tell me who specifically you're asking about?"
	default:
		return t.Prefix + "Could you clarify your 'who' question? I'd like to help you better."
	}
}

func (e *Engine) howQuestion(t *Turn) string {
	switch {
	case strings.Contains(t.Lower, "how are you"):
		return t.Prefix + "I'm doing great, thank you for asking! I'm here and ready to help. How are you doing today?"
	case strings.Contains(t.Lower, "how does") || strings.Contains(t.Lower, "how do"):
		if strings.Contains(t.Lower, "sentiment") || strings.Contains(t.Lower, "work") {
			return t.Prefix + "Sentiment analysis works by analyzing words, phrases, and their emotional context. I examine text for positive and negative words, punctuation, and other linguistic cues to determine emotional tone. It's quite sophisticated!"
		}
		topic := stripPhrases(t.Lower, "how does", "how do")
		if topic != "" {
			return fmt.Sprintf("%sYou're asking how '%s' works. That's a good question! Could you provide more context so I can give you a better explanation?", t.Prefix, topic)
		}
		return t.Prefix + "I'd be happy to explain! What specifically would you like to know how it works?"
	default:
		return t.Prefix + "I'd be happy to help explain. Could you provide more details about what you're asking?"
	}
}

func (e *Engine) whyQuestion(t *Turn) string {
	topic := stripPhrases(t.Lower, "why")
	if topic != "" {
		return fmt.Sprintf("%sYou're asking why '%s'. That's a thoughtful question! Could you provide more context so I can give you a meaningful answer?", t.Prefix, topic)
	}
	return t.Prefix + "That's an interesting 'why' question. Could you tell me more about what specifically you're wondering about?"
}

func (e *Engine) whereQuestion(t *Turn) string {
	location := stripPhrases(t.Lower, "where")
	if location != "" {
		return fmt.Sprintf("%sYou're asking about where '%s'. I don't have specific location information, but I'm here to help with other questions!", t.Prefix, location)
	}
	return t.Prefix + "Could you clarify what location you're asking about?"
}

func (e *Engine) whenQuestion(t *Turn) string {
	if strings.Contains(t.Lower, "time") || strings.Contains(t.Lower, "now") {
		return timeDateReply(t.Lower, t.Now)
	}
	event := stripPhrases(t.Lower, "when")
	if event != "" {
		return fmt.Sprintf("%sYou're asking when '%s'. I don't have specific timing information, but I can tell you the current time and date if that helps!", t.Prefix, event)
	}
	return t.Prefix + "Could you clarify what you're asking about the timing of?"
}
