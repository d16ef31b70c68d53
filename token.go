package lispp

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// TokenKind enumerates the lexical categories the tokenizer produces.
type TokenKind int

const (
	TokUndefined TokenKind = iota
	TokNumber
	TokString
	TokSymbol
	TokComma
	TokBacktick
	TokDot
	TokQuote
	TokOpenParen
	TokCloseParen
	TokNewline
	TokEnd
)

// Token is one lexical unit. Text holds the payload for String/Symbol
// tokens; Num holds the payload for Number tokens.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
}

// Tokenizer is a streaming lexer over a byte source with one token of
// lookahead, buffered internally. The lookahead buffer is conceptually
// "Undefined" when empty (nothing has been peeked yet), populated by
// Peek, and consumed by Next.
type Tokenizer struct {
	r       *bufio.Reader
	line    int
	pending *Token
}

// NewTokenizer wraps r with a Tokenizer. Line numbering starts at 1.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r), line: 1}
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (Token, *LispError) {
	if t.pending == nil {
		tok, err := t.parseToken()
		if err != nil {
			return Token{}, err
		}
		t.pending = &tok
	}
	return *t.pending, nil
}

// Next consumes and returns the next token.
func (t *Tokenizer) Next() (Token, *LispError) {
	tok, err := t.Peek()
	if err != nil {
		return Token{}, err
	}
	t.pending = nil
	return tok, nil
}

// HasMore reports whether any more content (beyond trailing whitespace)
// remains on the stream, ignoring newlines.
func (t *Tokenizer) HasMore() bool {
	for {
		t.skipWhitespace(false)
		c, ok := t.peekByte()
		if !ok {
			return false
		}
		if c != '\n' {
			return true
		}
		t.getByte()
		t.line++
	}
}

// CurrentLine returns the 1-based number of the line the tokenizer is on
// (one plus the newlines read so far), for error annotation in the batch
// driver.
func (t *Tokenizer) CurrentLine() int {
	return t.line
}

// Clear discards the buffered lookahead token, rather than literally
// re-invoking the lexer the way the original's clear() does. The
// bufio.Reader underneath keeps no error state that needs resetting.
func (t *Tokenizer) Clear() {
	t.pending = nil
}

func (t *Tokenizer) peekByte() (byte, bool) {
	b, err := t.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (t *Tokenizer) peekByteAt(n int) (byte, bool) {
	b, err := t.r.Peek(n + 1)
	if err != nil || len(b) < n+1 {
		return 0, false
	}
	return b[n], true
}

func (t *Tokenizer) getByte() (byte, bool) {
	b, err := t.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func isWhiteSpace(c byte, acceptEOL bool) bool {
	isSpace := c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
	return isSpace && (acceptEOL || c != '\n')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isDigitExt(c byte) bool {
	return isDigit(c) || isSign(c) || c == '.'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

const symbolInitialExtra = "!$%&*/:<=>?~_^#"

func isSymbolInitial(c byte) bool {
	return isAlpha(c) || strings.IndexByte(symbolInitialExtra, c) >= 0
}

func isSymbolChar(c byte) bool {
	return isSymbolInitial(c) || isDigit(c) || c == '.' || c == '-' || c == '+'
}

func (t *Tokenizer) skipWhitespace(acceptEOL bool) {
	for {
		c, ok := t.peekByte()
		if !ok || !isWhiteSpace(c, acceptEOL) {
			return
		}
		t.getByte()
	}
}

func (t *Tokenizer) readWhile(cond func(byte) bool) string {
	var sb strings.Builder
	for {
		c, ok := t.peekByte()
		if !ok || !cond(c) {
			break
		}
		t.getByte()
		sb.WriteByte(c)
	}
	return sb.String()
}

func (t *Tokenizer) parseToken() (Token, *LispError) {
	t.skipWhitespace(false)

	c, ok := t.peekByte()
	if !ok {
		return Token{Kind: TokEnd}, nil
	}

	switch {
	case c == '\n':
		t.getByte()
		t.line++
		return Token{Kind: TokNewline}, nil
	case c == '"':
		return t.parseStringToken()
	case t.isSymbolTokenStart(c):
		return t.parseSymbolToken()
	case isDigitExt(c):
		return t.parseNumberToken()
	default:
		return t.parseOneCharToken()
	}
}

func (t *Tokenizer) isSymbolTokenStart(c byte) bool {
	if isSymbolInitial(c) {
		return true
	}
	if !isSign(c) {
		return false
	}
	next, ok := t.peekByteAt(1)
	return !ok || !isDigitExt(next)
}

func (t *Tokenizer) parseStringToken() (Token, *LispError) {
	t.getByte() // opening quote
	text := t.readWhile(func(c byte) bool { return c != '"' })
	if _, ok := t.peekByte(); !ok {
		return Token{}, newTokenizerError("unterminated string")
	}
	t.getByte() // closing quote
	return Token{Kind: TokString, Text: text}, nil
}

func (t *Tokenizer) parseSymbolToken() (Token, *LispError) {
	value := t.readWhile(isSymbolChar)
	if isSign(value[0]) && len(value) != 1 {
		return Token{}, newTokenizerError("invalid identifier token %q", value)
	}
	return Token{Kind: TokSymbol, Text: value}, nil
}

func (t *Tokenizer) parseNumberToken() (Token, *LispError) {
	value := t.readWhile(isDigitExt)

	if strings.IndexByte(value[1:], '+') >= 0 || strings.IndexByte(value[1:], '-') >= 0 {
		return Token{}, newTokenizerError("invalid number token %q", value)
	}

	if value == "." {
		return Token{Kind: TokDot}, nil
	}

	dotCount := strings.Count(value, ".")
	if dotCount > 1 {
		return Token{}, newTokenizerError("invalid number token %q", value)
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Token{}, newTokenizerError("invalid number token %q", value)
	}
	return Token{Kind: TokNumber, Num: num}, nil
}

func (t *Tokenizer) parseOneCharToken() (Token, *LispError) {
	c, _ := t.getByte()
	switch c {
	case ',':
		return Token{Kind: TokComma}, nil
	case '`':
		return Token{Kind: TokBacktick}, nil
	case '.':
		return Token{Kind: TokDot}, nil
	case '\'':
		return Token{Kind: TokQuote}, nil
	case '(':
		return Token{Kind: TokOpenParen}, nil
	case ')':
		return Token{Kind: TokCloseParen}, nil
	default:
		return Token{}, newTokenizerError("unexpected symbol: %q", string(c))
	}
}
