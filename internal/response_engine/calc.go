package response_engine

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const divideByZeroReply = "I can't divide by zero!"

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

type naturalPattern struct {
	re *regexp.Regexp
	op arithOp
}

// Natural-language calculation templates, word and symbol forms. Checked in
// order; the first match wins.
var naturalPatterns = []naturalPattern{
	{regexp.MustCompile(`what is (\d+)\s+plus\s+(\d+)`), opAdd},
	{regexp.MustCompile(`what is (\d+)\s*\+\s*(\d+)`), opAdd},
	{regexp.MustCompile(`(\d+)\s+plus\s+(\d+)`), opAdd},
	{regexp.MustCompile(`what is (\d+)\s+minus\s+(\d+)`), opSub},
	{regexp.MustCompile(`what is (\d+)\s*-\s*(\d+)`), opSub},
	{regexp.MustCompile(`(\d+)\s+minus\s+(\d+)`), opSub},
	{regexp.MustCompile(`what is (\d+)\s+times\s+(\d+)`), opMul},
	{regexp.MustCompile(`what is (\d+)\s*\*\s*(\d+)`), opMul},
	{regexp.MustCompile(`(\d+)\s+times\s+(\d+)`), opMul},
	{regexp.MustCompile(`what is (\d+)\s+divided by\s+(\d+)`), opDiv},
	{regexp.MustCompile(`what is (\d+)\s*/\s*(\d+)`), opDiv},
	{regexp.MustCompile(`(\d+)\s+divided by\s+(\d+)`), opDiv},
}

// exprChars keeps only characters that may appear in a plain arithmetic
// expression.
var exprChars = regexp.MustCompile(`[^0-9+\-*/().\s]`)

var validExpr = regexp.MustCompile(`^[\d+\-*/().\s]+$`)

// calculate attempts natural-language arithmetic first, then falls back to
// evaluating whatever arithmetic expression is left after stripping all
// other characters. Division by zero is a recognized outcome with its own
// reply; every other failure means "no calculation handled".
func (e *Engine) calculate(input, lower string) (string, bool) {
	for _, p := range naturalPatterns {
		match := p.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		a, errA := strconv.ParseFloat(match[1], 64)
		b, errB := strconv.ParseFloat(match[2], 64)
		if errA != nil || errB != nil {
			return "", false
		}
		if p.op == opDiv && b == 0 {
			return divideByZeroReply, true
		}
		return "The answer is " + formatNumber(applyOp(p.op, a, b)) + ".", true
	}

	expression := strings.TrimSpace(exprChars.ReplaceAllString(input, ""))
	if expression == "" || !validExpr.MatchString(expression) {
		return "", false
	}
	if len(expression) > e.maxExprLen {
		return "", false
	}

	result, err := evalExpression(expression)
	if errors.Is(err, errDivideByZero) {
		return divideByZeroReply, true
	}
	if err != nil {
		return "", false
	}
	return "The answer is " + formatNumber(result) + ".", true
}

func applyOp(op arithOp, a, b float64) float64 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	default:
		return a / b
	}
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ----- bounded expression evaluator -----

// The fallback evaluator accepts digits, the four operators, parentheses
// and whitespace only, with standard operator precedence. It is
// deliberately small and bounded: input length is capped by the engine and
// nesting depth by maxExprDepth, so adversarial input cannot blow the
// stack.

const maxExprDepth = 32

var (
	errDivideByZero = errors.New("division by zero")
	errBadExpr      = errors.New("malformed expression")
)

type exprParser struct {
	input string
	pos   int
	depth int
}

func evalExpression(expression string) (float64, error) {
	p := &exprParser{input: expression}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, errBadExpr
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, errBadExpr
	}
	return value, nil
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseExpr handles addition and subtraction.
func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm handles multiplication and division.
func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, errDivideByZero
			}
			left /= right
		}
	}
}

// parseFactor handles numbers, unary signs and parentheses.
func (p *exprParser) parseFactor() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		return 0, errBadExpr
	}

	c, ok := p.peek()
	if !ok {
		return 0, errBadExpr
	}

	switch {
	case c == '+':
		p.pos++
		return p.parseFactor()
	case c == '-':
		p.pos++
		value, err := p.parseFactor()
		return -value, err
	case c == '(':
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing != ')' {
			return 0, errBadExpr
		}
		p.pos++
		return value, nil
	default:
		return p.parseNumber()
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, errBadExpr
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, errBadExpr
	}
	return value, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
