package response_engine

import (
	"strings"
	"time"

	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

const (
	clockLayout = "03:04 PM"               // 12-hour clock with AM/PM
	dateLayout  = "Monday, January 02, 2006" // weekday, month, day, year
)

var timeQuestionPhrases = []string{
	"what time", "current time", "time now", "time is it", "what's the time",
}

var dateQuestionPhrases = []string{
	"what date", "what's the date", "date today", "today's date",
	"current date", "what day is it", "what day is today",
}

var genericQuestionWords = []string{"what", "when", "which"}

// timeDateReply disambiguates explicit time questions, date questions,
// generic "day" questions and bare mentions (the latter only answered when
// phrased as a question) and formats the answer from the supplied clock.
func timeDateReply(lower string, now time.Time) string {
	timeStr := now.Format(clockLayout)
	dateStr := now.Format(dateLayout)

	isTimeQuestion := textutil.ContainsAny(lower, timeQuestionPhrases)
	isDateQuestion := textutil.ContainsAny(lower, dateQuestionPhrases)
	isQuestionForm := strings.HasSuffix(lower, "?") || textutil.ContainsAny(lower, genericQuestionWords)

	switch {
	case isTimeQuestion:
		return "The current time is " + timeStr + "."
	case isDateQuestion:
		return "Today's date is " + dateStr + "."
	case strings.Contains(lower, "day") && textutil.ContainsAny(lower, []string{"what", "which"}):
		return "Today is " + now.Format("Monday") + "."
	case strings.Contains(lower, "time") && isQuestionForm:
		return "The current time is " + timeStr + "."
	case strings.Contains(lower, "date") && isQuestionForm:
		return "Today's date is " + dateStr + "."
	}

	// Bare mention that still reached the time/date rule.
	return "The current time is " + timeStr + " and today's date is " + dateStr + "."
}
