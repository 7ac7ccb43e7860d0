package response_engine

const defaultMaxExpressionLength = 128

const firstGreetingBody = "I'm a sentiment analysis chatbot. I can chat with you, answer questions, tell you the time, do calculations, and analyze emotions in your messages. How can I help you today?"

// feeling tone buckets. Words outside every bucket fall through silently.
type bucket int

const (
	bucketNone bucket = iota
	bucketPositive
	bucketSad
	bucketAnxious
	bucketTired
)

var feelingBuckets = map[string]bucket{
	"happy":     bucketPositive,
	"excited":   bucketPositive,
	"great":     bucketPositive,
	"wonderful": bucketPositive,
	"amazing":   bucketPositive,
	"grateful":  bucketPositive,
	"proud":     bucketPositive,
	"relieved":  bucketPositive,

	"sad":          bucketSad,
	"unhappy":      bucketSad,
	"depressed":    bucketSad,
	"down":         bucketSad,
	"disappointed": bucketSad,

	"worried":    bucketAnxious,
	"anxious":    bucketAnxious,
	"stressed":   bucketAnxious,
	"frustrated": bucketAnxious,

	"tired":    bucketTired,
	"confused": bucketTired,
}

func feelingBucket(word string) bucket {
	return feelingBuckets[word]
}

// defaultReplies are the generic acknowledgements used when no other rule
// matches; the hash of the input picks one.
var defaultReplies = []string{
	"I see. That's interesting. Can you tell me more about that?",
	"I understand. How does that make you feel?",
	"Thank you for sharing that. What else is on your mind?",
	"I'm listening. Please continue, I'd like to hear more.",
	"That's helpful to know. Is there something specific you'd like to discuss or ask about?",
}
