package signal_extractor

import "regexp"

// Hand-authored detection vocabulary. Every flag on the Bundle is driven by
// one of these fixed lists; matching is case-insensitive substring
// membership unless noted otherwise on the extractor.

var questionWords = []string{"what", "who", "where", "when", "why", "how"}

var apologyWords = []string{"sorry", "apologize", "apology", "forgive"}

var greetingWords = []string{
	"hello", "hi", "hey", "greetings",
	"good morning", "good afternoon", "good evening",
	"morning", "afternoon", "evening",
}

var goodbyeWords = []string{"bye", "goodbye", "see you", "farewell", "later"}

var thanksWords = []string{"thank", "thanks", "appreciate", "grateful"}

var birthdayPhrases = []string{
	"birthday", "my birthday", "it's my birthday", "today is my birthday",
	"turning", "years old today", "born today",
}

var specialEventPhrases = []string{
	"anniversary", "graduation", "wedding", "promotion", "new job", "got engaged",
}

var reciprocalPhrases = []string{
	"and you", "what about you", "how about you", "you?", "and yourself",
}

var complaintWords = []string{
	"disappoint", "disappointing", "bad", "terrible", "awful", "horrible",
	"worst", "hate", "sucks", "useless", "stupid", "dumb", "waste", "poor",
	"pathetic",
}

var criticismPhrases = []string{
	"your service", "you are bad", "you're bad", "you are terrible",
	"you're terrible", "you are awful", "you're awful", "you are horrible",
	"you're horrible", "you are worst", "you're worst", "you suck",
	"this bot", "this chatbot", "not helpful", "not working",
	"does not work", "doesn't work",
}

var positiveFeedbackPhrases = []string{
	"you are good", "you're good", "you are great", "you're great",
	"you are excellent", "you're excellent", "you are amazing",
	"you're amazing", "you are wonderful", "you're wonderful",
	"you are awesome", "you're awesome", "you are very good",
	"you're very good", "you are the best", "you're the best",
	"you are helpful", "you're helpful", "you are perfect", "you're perfect",
}

var comparisonPhrases = []string{
	"was better", "was worse", "used to be", "better than", "worse than",
	"not as good", "not as bad", "improved", "got worse", "declined",
	"better before", "worse before",
}

var experiencePhrases = []string{
	"experience was", "last experience", "previous experience",
	"this experience", "my experience", "the experience",
}

// profanityWords are matched on word boundaries so substrings inside longer
// words ("hello" vs "hell") do not trigger.
var profanityWords = []string{
	"fuck", "damn", "hell", "shit", "asshole", "bitch", "bastard", "crap",
	"piss", "dick", "cock", "pussy", "motherfucker", "fucking", "fucked",
}

var offensivePhrases = []string{
	"fuck you", "fuck off", "go to hell", "screw you", "shut up",
	"shut your", "kill yourself", "die",
}

var timeWords = []string{"time", "what time", "current time", "clock"}

var datePhrases = []string{
	"what date", "what's the date", "what is the date", "what day is it",
	"what day is today", "date today", "today's date", "current date",
}

var dateQuestionWords = []string{"what", "when", "which"}

var calcWords = []string{"calculate", "what is", "equals", "="}

// feelingWords are checked in order; the first match wins.
var feelingWords = []string{
	"happy", "sad", "angry", "excited", "worried", "anxious",
	"stressed", "tired", "energetic", "confused", "frustrated",
	"grateful", "proud", "disappointed", "relieved", "upset", "mad",
	"depressed", "down", "unhappy", "great", "wonderful", "amazing",
	"fine", "okay", "ok", "terrible", "awful", "horrible",
}

// nameBlacklist holds words that must never be treated as names, mostly
// continuations of "I'm ..." that describe state rather than identity.
var nameBlacklist = map[string]struct{}{
	"feeling": {}, "doing": {}, "going": {}, "here": {}, "there": {},
	"sorry": {}, "fine": {}, "good": {}, "bad": {},
	"happy": {}, "sad": {}, "angry": {}, "excited": {}, "worried": {},
	"anxious": {}, "stressed": {}, "tired": {}, "energetic": {},
	"confused": {}, "frustrated": {}, "grateful": {}, "proud": {},
	"disappointed": {}, "relieved": {}, "upset": {}, "mad": {},
	"depressed": {}, "down": {}, "unhappy": {}, "great": {},
	"wonderful": {}, "amazing": {}, "okay": {}, "ok": {},
	"terrible": {}, "awful": {}, "horrible": {}, "being": {},
	"working": {}, "studying": {}, "learning": {}, "trying": {},
	"thinking": {}, "wondering": {},
}

// High-precision name patterns are tried first; a blacklisted candidate
// from these rejects name extraction outright.
var strictNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is (\w+)`),
	regexp.MustCompile(`call me (\w+)`),
	regexp.MustCompile(`name's (\w+)`),
	regexp.MustCompile(`i go by (\w+)`),
	regexp.MustCompile(`people call me (\w+)`),
}

// Low-precision fallbacks, accepted only under stricter checks.
var looseNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`i'm (\w+)`),
	regexp.MustCompile(`i am (\w+)`),
}

var digitExprPattern = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)

var profanityPatterns = compileBoundaryPatterns(profanityWords)

func compileBoundaryPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, word := range words {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return patterns
}
