// Package console is the interactive front end: it reads utterances from
// the terminal, prints replies with optional per-message sentiment tags,
// and renders the end-of-conversation summary.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mwhitfield/sentiment_chatbot/internal/session_manager"
	"github.com/mwhitfield/sentiment_chatbot/internal/sentiment"
	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

const (
	bannerWidth     = 60
	summaryTruncate = 50
)

var sentimentEmoji = map[sentiment.Label]string{
	sentiment.Positive: "😊",
	sentiment.Negative: "😔",
	sentiment.Neutral:  "😐",
}

// Config holds console dependencies. Session and Logger are required.
type Config struct {
	Session *session_manager.Session
	Logger  logger.Logger

	// Tier2 shows the per-message sentiment tag next to each reply and
	// the mood trend in the summary.
	Tier2 bool

	// In and Out default to the process terminal in cmd; tests inject
	// buffers here.
	In  io.Reader
	Out io.Writer
}

// Console drives one conversation loop.
type Console struct {
	cfg    Config
	banner func(format string, a ...interface{}) string
	tag    func(format string, a ...interface{}) string
}

// New creates a Console.
func New(cfg Config) (*Console, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, fmt.Errorf("input and output streams are required")
	}
	return &Console{
		cfg:    cfg,
		banner: color.New(color.FgCyan).SprintfFunc(),
		tag:    color.New(color.FgYellow).SprintfFunc(),
	}, nil
}

// Run blocks until the user types "exit", input ends, or ctx is canceled,
// then prints the conversation summary. A failing turn is reported and the
// loop continues.
func (c *Console) Run(ctx context.Context) error {
	c.printWelcome()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.cfg.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

loop:
	for {
		fmt.Fprint(c.cfg.Out, "You: ")

		// Cancellation wins over buffered input.
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.cfg.Out, "\n\nInterrupted by user. Exiting...")
			break loop
		default:
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.cfg.Out, "\n\nInterrupted by user. Exiting...")
			break loop
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.cfg.Out, "\n\nEnd of input. Exiting...")
				break loop
			}
			input := strings.TrimSpace(line)
			if strings.EqualFold(input, "exit") {
				break loop
			}
			if input == "" {
				continue
			}
			c.handleTurn(input)
		}
	}

	select {
	case err := <-scanErr:
		if err != nil {
			c.cfg.Logger.Warn("input stream error", logger.ErrorField(err))
		}
	default:
	}

	c.printSummary()
	return nil
}

// handleTurn runs one utterance through the session. A panic in the rule
// pipeline is contained to the turn.
func (c *Console) handleTurn(input string) {
	defer func() {
		if r := recover(); r != nil {
			c.cfg.Logger.Error("turn panicked", logger.StringField("panic", fmt.Sprint(r)))
			fmt.Fprintf(c.cfg.Out, "\nError: %v\n", r)
		}
	}()

	result, err := c.cfg.Session.Respond(input)
	if err != nil {
		fmt.Fprintf(c.cfg.Out, "\nError: %v\n", err)
		return
	}

	if c.cfg.Tier2 {
		emoji, ok := sentimentEmoji[result.Label]
		if !ok {
			emoji = sentimentEmoji[sentiment.Neutral]
		}
		fmt.Fprintf(c.cfg.Out, "Bot: %s %s\n", result.Reply,
			c.tag("[%s %s]", result.Label, emoji))
	} else {
		fmt.Fprintf(c.cfg.Out, "Bot: %s\n", result.Reply)
	}
	fmt.Fprintln(c.cfg.Out)
}

func (c *Console) printWelcome() {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(c.cfg.Out)
	fmt.Fprintln(c.cfg.Out, c.banner("%s", rule))
	fmt.Fprintln(c.cfg.Out, c.banner("Welcome to the Sentiment Analysis Chatbot!"))
	fmt.Fprintln(c.cfg.Out, c.banner("%s", rule))
	fmt.Fprintln(c.cfg.Out, "Type 'exit' to end the conversation and see sentiment analysis.")
	fmt.Fprintln(c.cfg.Out, c.banner("%s", rule))
	fmt.Fprintln(c.cfg.Out)
}

func (c *Console) printSummary() {
	sum := c.cfg.Session.Summarize()
	if sum.Turns == 0 {
		fmt.Fprintln(c.cfg.Out, "\nNo conversation to analyze. Goodbye!")
		fmt.Fprintln(c.cfg.Out)
		return
	}

	rule := strings.Repeat("=", bannerWidth)
	thin := strings.Repeat("-", bannerWidth)
	var b strings.Builder

	b.WriteString("\n" + rule + "\n")
	b.WriteString("CONVERSATION SUMMARY\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "\nTotal messages: %d\n", sum.Turns)
	fmt.Fprintf(&b, "Overall sentiment: %s\n", sum.Overall)
	if c.cfg.Tier2 {
		fmt.Fprintf(&b, "Mood trend: %s\n", sum.Trend)
	}

	b.WriteString("\n" + thin + "\n")
	b.WriteString("Message-by-Message Sentiment (Tier 2):\n")
	b.WriteString(thin + "\n")
	for i, entry := range sum.Entries {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, entry.Sentiment,
			textutil.Truncate(entry.UserText, summaryTruncate))
	}
	b.WriteString(rule + "\n")
	fmt.Fprint(c.cfg.Out, b.String())

	fmt.Fprintln(c.cfg.Out, "\nSentiment Distribution:")
	for _, label := range []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral} {
		count, ok := sum.Distribution[label]
		if !ok {
			continue
		}
		percentage := float64(count) / float64(sum.Turns) * 100
		fmt.Fprintf(c.cfg.Out, "  %s: %d messages (%.1f%%)\n", label, count, percentage)
	}
	fmt.Fprintln(c.cfg.Out)
}
