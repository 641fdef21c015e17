package msg

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/ardnew/msgfmt/log"
)

// errNoMatch reports that an alternative did not match at the current
// position. The parser backtracks on it; any other error is fatal.
var errNoMatch = errors.New("no match")

// parser holds the parser state.
type parser struct {
	input    []byte
	pos      int
	line     int
	col      int
	depth    int
	maxDepth int
	far      failure
	logger   log.Logger
}

// failure records the furthest position at which an alternative failed and
// what it expected there.
type failure struct {
	pos      Position
	expected []string
	set      bool
}

// mark is a saved parser position for backtracking.
type mark struct {
	pos, line, col int
}

// parse parses source into a Message without consulting the cache.
func parse(ctx context.Context, source string, o options) (*Message, error) {
	p := &parser{
		input:    []byte(source),
		pos:      0,
		line:     1,
		col:      1,
		maxDepth: o.key.maxDepth,
		logger:   o.logger,
	}

	m, err := p.parseMessage(true)
	if err == nil && !p.eof() {
		err = errNoMatch
	}

	if err != nil {
		pe := &ParseError{}
		if !errors.As(err, &pe) {
			pe = p.farthest()
		}

		pe.Source = source

		p.logger.DebugContext(ctx, "parse failed",
			slog.String("position", pe.Position.String()),
			slog.Any("expected", pe.Expected),
		)

		return nil, pe
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("source_length", len(source)),
		slog.Int("element_count", len(m.Elements)),
	)

	return m, nil
}

// parseMessage parses a sequence of elements. At the top level a text run
// ends only at '{'; inside a case body it also ends at '}', which is left
// for the caller to consume.
func (p *parser) parseMessage(top bool) (*Message, error) {
	m := &Message{Elements: make([]Element, 0)}

	for !p.eof() {
		switch p.peek() {
		case '{':
			el, err := p.parseConstruct()
			if err != nil {
				return nil, err
			}

			m.Elements = append(m.Elements, el)

			continue

		case '}':
			if !top {
				return m, nil
			}
		}

		m.Elements = append(m.Elements, p.parseText(top))
	}

	return m, nil
}

// parseConstruct parses a brace construct, trying number, select, plural,
// and bare parameter in that order. Each alternative restarts at the '{'.
func (p *parser) parseConstruct() (Element, error) {
	start := p.mark()

	for _, alt := range []func() (Element, error){
		p.parseNumber,
		p.parseSelect,
		p.parsePlural,
		p.parseParameter,
	} {
		el, err := alt()
		if err == nil {
			return el, nil
		}

		if !errors.Is(err, errNoMatch) {
			return nil, err
		}

		p.reset(start)
	}

	return nil, errNoMatch
}

// parseText consumes a non-empty run of literal text.
func (p *parser) parseText(top bool) Element {
	start := p.pos

	for !p.eof() {
		ch := p.peek()
		if ch == '{' || (!top && ch == '}') {
			break
		}

		p.advance()
	}

	return Text{Value: string(p.input[start:p.pos])}
}

// parseHead parses the common prefix '{' ws* name ws*.
func (p *parser) parseHead() (string, error) {
	if !p.expect('{') {
		return "", p.fail("{")
	}

	p.skipWhitespace()

	name := p.takeWhile(isNameByte)
	if name == "" {
		return "", p.fail("parameter name")
	}

	p.skipWhitespace()

	return name, nil
}

// parseKeyword parses ',' ws* keyword.
func (p *parser) parseKeyword(keyword string) error {
	if !p.expect(',') {
		return p.fail(",")
	}

	p.skipWhitespace()

	if !p.expectWord(keyword) {
		return p.fail(keyword)
	}

	return nil
}

// parseParameter parses: '{' ws* name ws* '}'.
func (p *parser) parseParameter() (Element, error) {
	name, err := p.parseHead()
	if err != nil {
		return nil, err
	}

	if !p.expect('}') {
		return nil, p.fail("}", ",")
	}

	return Parameter{Name: name}, nil
}

// parseNumber parses:
// '{' ws* name ws* ',' ws* "number" (ws* ',' ws* kind)? ws* '}'.
func (p *parser) parseNumber() (Element, error) {
	name, err := p.parseHead()
	if err != nil {
		return nil, err
	}

	err = p.parseKeyword("number")
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	format := NumberFormat{Kind: KindNumber}

	if p.expect(',') {
		p.skipWhitespace()

		format, err = p.parseNumberKind()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
	}

	if !p.expect('}') {
		return nil, p.fail("}")
	}

	return Number{Parameter: name, Format: format}, nil
}

// parseNumberKind parses:
// "integer" | "percent" | "currency" ('/' code)? | empty.
func (p *parser) parseNumberKind() (NumberFormat, error) {
	switch {
	case p.expectWord("integer"):
		return NumberFormat{Kind: KindInteger}, nil

	case p.expectWord("percent"):
		return NumberFormat{Kind: KindPercent}, nil

	case p.expectWord("currency"):
		code := DefaultCurrency

		if p.expect('/') {
			code = p.takeWhile(isAlnumByte)
			if code == "" {
				return NumberFormat{}, p.fail("currency code")
			}
		}

		return NumberFormat{Kind: KindCurrency, Currency: code}, nil

	default:
		return NumberFormat{Kind: KindNumber}, nil
	}
}

// parseSelect parses:
// '{' ws* name ws* ',' ws* "select" ws* ',' (ws* token ws* body)+ ws* '}'.
func (p *parser) parseSelect() (Element, error) {
	name, err := p.parseHead()
	if err != nil {
		return nil, err
	}

	err = p.parseKeyword("select")
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect(',') {
		return nil, p.fail(",")
	}

	err = p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	cases := make([]SelectCase, 0)

	for {
		p.skipWhitespace()

		token := p.takeWhile(isNameByte)
		if token == "" {
			break
		}

		p.skipWhitespace()

		body, err := p.parseCaseBody()
		if err != nil {
			return nil, err
		}

		cases = append(cases, SelectCase{Selector: token, Message: body})
	}

	if len(cases) == 0 {
		return nil, p.fail("select case")
	}

	if !p.expect('}') {
		return nil, p.fail("}")
	}

	return Select{Parameter: name, Cases: cases}, nil
}

// parsePlural parses:
// '{' ws* name ws* ',' ws* "plural" ws* ',' (ws* selector ws* body)+ ws* '}'.
func (p *parser) parsePlural() (Element, error) {
	name, err := p.parseHead()
	if err != nil {
		return nil, err
	}

	err = p.parseKeyword("plural")
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect(',') {
		return nil, p.fail(",")
	}

	err = p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	cases := make([]PluralCase, 0)

	for {
		p.skipWhitespace()

		token := p.takeWhile(isAlnumByte)
		if token == "" {
			break
		}

		p.skipWhitespace()

		body, err := p.parseCaseBody()
		if err != nil {
			return nil, err
		}

		cases = append(cases, PluralCase{
			Selector: ParseSelector(token),
			Message:  body,
		})
	}

	if len(cases) == 0 {
		return nil, p.fail("plural case")
	}

	if !p.expect('}') {
		return nil, p.fail("}")
	}

	return Plural{Parameter: name, Cases: cases}, nil
}

// parseCaseBody parses: '{' element* '}'.
func (p *parser) parseCaseBody() (*Message, error) {
	if !p.expect('{') {
		return nil, p.fail("{")
	}

	m, err := p.parseMessage(false)
	if err != nil {
		return nil, err
	}

	if !p.expect('}') {
		return nil, p.fail("}")
	}

	return m, nil
}

// enter descends one level of case nesting.
func (p *parser) enter() error {
	p.depth++

	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return &ParseError{
			Position: p.position(),
			err: ErrMaxDepthExceeded.With(
				slog.Int("depth", p.depth),
				slog.Int("max_depth", p.maxDepth),
			),
		}
	}

	return nil
}

func (p *parser) leave() { p.depth-- }

// fail records what was expected at the current position and returns
// errNoMatch.
func (p *parser) fail(expected ...string) error {
	pos := p.position()

	switch {
	case !p.far.set || pos.Offset > p.far.pos.Offset:
		p.far = failure{pos: pos, expected: slices.Clone(expected), set: true}

	case pos.Offset == p.far.pos.Offset:
		for _, e := range expected {
			if !slices.Contains(p.far.expected, e) {
				p.far.expected = append(p.far.expected, e)
			}
		}
	}

	return errNoMatch
}

// farthest converts the furthest recorded failure to a ParseError.
func (p *parser) farthest() *ParseError {
	if !p.far.set {
		p.far = failure{pos: p.position(), set: true}
	}

	pe := &ParseError{
		Position: p.far.pos,
		Expected: p.far.expected,
		err:      ErrParse,
	}

	if off := p.far.pos.Offset; off < len(p.input) {
		r, _ := utf8.DecodeRune(p.input[off:])
		pe.Found = string(r)
	}

	return pe
}

// Helper methods

func (p *parser) mark() mark { return mark{p.pos, p.line, p.col} }

func (p *parser) reset(m mark) { p.pos, p.line, p.col = m.pos, m.line, m.col }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

// expectWord consumes word if the input continues with it.
func (p *parser) expectWord(word string) bool {
	if p.pos+len(word) > len(p.input) ||
		string(p.input[p.pos:p.pos+len(word)]) != word {
		return false
	}

	p.pos += len(word)
	p.col += len(word)

	return true
}

// takeWhile consumes a run of ASCII bytes accepted by ok.
func (p *parser) takeWhile(ok func(byte) bool) string {
	start := p.pos

	for !p.eof() && ok(p.input[p.pos]) {
		p.pos++
		p.col++
	}

	return string(p.input[start:p.pos])
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && isSpaceByte(p.input[p.pos]) {
		p.advance()
	}
}

// Character classification

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isAlnumByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

func isNameByte(b byte) bool {
	return isAlnumByte(b) || b == '_'
}
