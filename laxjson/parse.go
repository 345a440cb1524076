package laxjson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds reported by the parser. Match with errors.Is.
var (
	// ErrUnexpectedEnd means the buffer was exhausted mid-string, mid-list,
	// or mid-dict.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrInvalidNumber means a numeric-looking prefix matched neither the
	// integer nor the floating-point grammar.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnexpectedChar means the dispatch character starts no known value.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrNonStringKey means a dict key parsed to something other than a string.
	ErrNonStringKey = errors.New("non-string object key")

	// ErrTooDeep means input nesting exceeded ParseOptions.MaxDepth.
	ErrTooDeep = errors.New("nesting too deep")
)

// ParseError represents a parsing error with its byte offset.
type ParseError struct {
	Kind    error
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("laxjson: %s (%s) at offset %d", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("laxjson: %s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the error kind for errors.Is matching.
func (e *ParseError) Unwrap() error { return e.Kind }

func errAt(kind error, offset int, message string) error {
	return &ParseError{Kind: kind, Offset: offset, Message: message}
}

// DefaultMaxDepth is the nesting bound applied when ParseOptions.MaxDepth
// is zero.
const DefaultMaxDepth = 128

// ParseOptions configures the parser behavior.
type ParseOptions struct {
	// MaxDepth bounds container nesting; parsing deeper input fails with
	// ErrTooDeep instead of exhausting the stack.
	MaxDepth int
}

// DefaultParseOptions returns the default parser configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxDepth: DefaultMaxDepth}
}

// Parse parses one JSON value from the start of input. Trailing content
// after the value is not an error; use ParseAt when the next offset matters.
// Empty or whitespace-only input parses to null.
func Parse(input string) (*JValue, error) {
	v, _, err := ParseAt(input, 0)
	return v, err
}

// ParseAt parses one JSON value from input starting at byte offset start and
// returns the value together with the offset of the first unconsumed byte.
func ParseAt(input string, start int) (*JValue, int, error) {
	return ParseAtWithOptions(input, start, DefaultParseOptions())
}

// ParseAtWithOptions parses with an explicit configuration.
func ParseAtWithOptions(input string, start int, opts ParseOptions) (*JValue, int, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if start < 0 {
		start = 0
	}
	p := &parser{input: input, maxDepth: opts.MaxDepth}
	return p.parseValue(start, 0)
}

// parser holds the immutable buffer; the cursor is threaded through return
// values so each call is stateless given (input, offset).
type parser struct {
	input    string
	maxDepth int
}

// parseValue parses any value at pos, dispatching on one lookahead byte.
func (p *parser) parseValue(pos, depth int) (*JValue, int, error) {
	pos = p.skipSpace(pos)

	// Exhausted input is an implicit null, not an error.
	if pos >= len(p.input) {
		return Null(), pos, nil
	}

	if depth > p.maxDepth {
		return nil, pos, errAt(ErrTooDeep, pos, fmt.Sprintf("exceeds max depth %d", p.maxDepth))
	}

	c := p.input[pos]
	switch {
	case c == '"':
		return p.parseString(pos)

	case c == '[':
		return p.parseList(pos, depth)

	case c == '{':
		return p.parseDict(pos, depth)

	case isDigit(c) || c == '-' || c == '+':
		return p.parseNumber(pos)

	case c == 't' || c == 'f' || c == 'n':
		return p.parseKeyword(pos)

	default:
		return nil, pos, errAt(ErrUnexpectedChar, pos, fmt.Sprintf("%q", c))
	}
}

// parseNumber matches the longest prefix of
// [+-]?digits(.digits?)?([eE][+-]?digits)? and converts it, integer first.
func (p *parser) parseNumber(start int) (*JValue, int, error) {
	end := start
	if p.input[end] == '+' || p.input[end] == '-' {
		end++
	}

	digits := 0
	for end < len(p.input) && isDigit(p.input[end]) {
		end++
		digits++
	}
	if digits == 0 {
		return nil, start, errAt(ErrInvalidNumber, start, "sign without digits")
	}

	if end < len(p.input) && p.input[end] == '.' {
		end++
		for end < len(p.input) && isDigit(p.input[end]) {
			end++
		}
	}

	if end < len(p.input) && (p.input[end] == 'e' || p.input[end] == 'E') {
		mark := end
		end++
		if end < len(p.input) && (p.input[end] == '+' || p.input[end] == '-') {
			end++
		}
		expDigits := 0
		for end < len(p.input) && isDigit(p.input[end]) {
			end++
			expDigits++
		}
		// An exponent needs digits; without them the match backs off to
		// the mantissa.
		if expDigits == 0 {
			end = mark
		}
	}

	lit := p.input[start:end]
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(n), end, nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return Double(f), end, nil
	}
	return nil, start, errAt(ErrInvalidNumber, start, lit)
}

// parseString scans from just past the opening quote to an unescaped
// closing quote.
func (p *parser) parseString(start int) (*JValue, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(p.input) {
		switch c := p.input[i]; c {
		case '\\':
			i++
			if i >= len(p.input) {
				return nil, i, errAt(ErrUnexpectedEnd, i, "unterminated escape")
			}
			b.WriteByte(unescapeChar(p.input[i]))
			i++
		case '"':
			return Str(b.String()), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return nil, i, errAt(ErrUnexpectedEnd, i, "unterminated string")
}

// unescapeChar maps the character following a backslash. Unrecognized
// escapes degrade to the character itself with the backslash dropped.
func unescapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	case 'b':
		return '\b'
	case 'a':
		return '\a'
	default:
		return c
	}
}

// parseList parses [v1, v2, ...]. Commas are optional; a trailing comma
// before ] is accepted.
func (p *parser) parseList(start, depth int) (*JValue, int, error) {
	res := List()
	i := start + 1
	for {
		i = p.skipSpace(i)
		if i >= len(p.input) {
			return nil, i, errAt(ErrUnexpectedEnd, i, "unterminated list")
		}
		if p.input[i] == ']' {
			return res, i + 1, nil
		}

		elem, next, err := p.parseValue(i, depth+1)
		if err != nil {
			return nil, next, err
		}
		res.Append(elem)

		i = p.skipSpace(next)
		if i < len(p.input) && p.input[i] == ',' {
			i++
		}
	}
}

// parseDict parses {"k": v, ...}. The colon and commas are optional; keys
// must parse to strings. A duplicate key replaces the earlier entry.
func (p *parser) parseDict(start, depth int) (*JValue, int, error) {
	res := Dict()
	i := start + 1
	for {
		i = p.skipSpace(i)
		if i >= len(p.input) {
			return nil, i, errAt(ErrUnexpectedEnd, i, "unterminated dict")
		}
		if p.input[i] == '}' {
			return res, i + 1, nil
		}

		keyStart := i
		key, next, err := p.parseValue(i, depth+1)
		if err != nil {
			return nil, next, err
		}
		k, err := key.AsStr()
		if err != nil {
			return nil, keyStart, errAt(ErrNonStringKey, keyStart, key.Type().String())
		}

		i = p.skipSpace(next)
		if i < len(p.input) && p.input[i] == ':' {
			i++
		}

		val, next, err := p.parseValue(i, depth+1)
		if err != nil {
			return nil, next, err
		}
		res.Set(k, val)

		i = p.skipSpace(next)
		if i < len(p.input) && p.input[i] == ',' {
			i++
		}
	}
}

// parseKeyword parses the true/false/null literals.
func (p *parser) parseKeyword(start int) (*JValue, int, error) {
	rest := p.input[start:]
	switch {
	case strings.HasPrefix(rest, "true"):
		return Bool(true), start + len("true"), nil
	case strings.HasPrefix(rest, "false"):
		return Bool(false), start + len("false"), nil
	case strings.HasPrefix(rest, "null"):
		return Null(), start + len("null"), nil
	}
	return nil, start, errAt(ErrUnexpectedChar, start, fmt.Sprintf("%q", p.input[start]))
}

func (p *parser) skipSpace(pos int) int {
	for pos < len(p.input) {
		switch p.input[pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
