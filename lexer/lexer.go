// Package lexer tokenizes proto3 source text into a token.Queue.
//
// The scanner never fails: anything it cannot classify becomes a plain Id
// token holding the raw, unrecognized text, so the parser always has a
// complete stream to work with and can raise a targeted diagnostic at the
// point the grammar actually expected something else. See readString,
// readIdentifier, and readNumberTail, which are grounded on the teacher's
// protoLex.readIdentifier/readNumber/readStringLiteral in
// parser/lexer.go, reworked from a goyacc Lex(lval) callback into a
// single-pass function that returns a whole token.Queue.
package lexer

import (
	"unicode/utf8"

	"github.com/draylundy/ProtobufGenerator/token"
	"github.com/rivo/uniseg"
)

// Lex tokenizes src in a single pass and returns the resulting queue.
func Lex(src []byte) *token.Queue {
	l := &lexer{data: src, line: 1, col: 1}
	var toks []token.Token
	for {
		b, ok := l.peekByte()
		if !ok {
			break
		}
		switch {
		case b == '\n':
			line, col := l.line, l.col
			l.advance()
			toks = append(toks, token.Token{Kind: token.EndLine, Lexeme: "\n", Line: line, Column: col})
		case isSpace(b):
			l.advance()
		case isLetter(b):
			toks = append(toks, l.readIdentifier())
		case isDigit(b) || b == '.':
			toks = append(toks, l.readNumberOrDot())
		case b == '"' || b == '`':
			toks = append(toks, l.readString(b))
		case b == '/':
			toks = append(toks, l.readSlash())
		case b == '*':
			toks = append(toks, l.readStar())
		case isControl(b):
			line, col := l.line, l.col
			l.advance()
			toks = append(toks, token.Token{Kind: token.Control, Lexeme: string(b), Line: line, Column: col})
		default:
			toks = append(toks, l.readUnrecognized())
		}
	}
	return token.NewQueue(toks)
}

type lexer struct {
	data []byte
	pos  int
	line int
	col  int
}

func (l *lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.data) {
		return 0, false
	}
	return l.data[l.pos], true
}

// advance consumes exactly one byte. This is safe for every call site in
// this file except readUnrecognized, which may need to consume a
// multi-byte rune that isn't ASCII; everything the grammar itself cares
// about (punctuation, identifier characters, digits, quotes, comment
// delimiters) is single-byte ASCII, so the rest of the scanner never
// needs to decode a rune to make a decision.
func (l *lexer) advance() byte {
	b := l.data[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

// fixColumn corrects the column counter after capturing a span of text
// that may contain multi-byte UTF-8 (string literals, in practice): the
// naive per-byte advance() above over-counts columns for any rune wider
// than one byte, and under/over-counts for combining marks. uniseg gives
// the actual number of user-perceived characters (grapheme clusters) in
// the span, which is what "column" should mean.
func (l *lexer) fixColumn(startCol int, text string) {
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width++
	}
	l.col = startCol + width
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isControl reports whether b is one of the punctuation tokens the
// grammar treats as Control: { } ( ) < > [ ] ; , = . Note '.' is handled
// separately by readNumberOrDot, since a leading '.' might start a
// decimal-leading float literal.
func isControl(b byte) bool {
	switch b {
	case '{', '}', '(', ')', '<', '>', '[', ']', ';', ',', '=':
		return true
	}
	return false
}

func (l *lexer) readIdentifier() token.Token {
	line, col := l.line, l.col
	start := l.pos
	l.advance() // the leading letter
	for {
		b, ok := l.peekByte()
		if !ok || !(isLetter(b) || isDigit(b) || b == '_') {
			break
		}
		l.advance()
	}
	return token.Token{Kind: token.Id, Lexeme: string(l.data[start:l.pos]), Line: line, Column: col}
}

// readNumberOrDot reads a numeric literal, or a lone '.' Control token if
// a leading dot isn't followed by a digit.
func (l *lexer) readNumberOrDot() token.Token {
	line, col := l.line, l.col
	start := l.pos
	b, _ := l.peekByte()
	if b == '.' {
		l.advance()
		nb, ok := l.peekByte()
		if !ok || !isDigit(nb) {
			return token.Token{Kind: token.Control, Lexeme: ".", Line: line, Column: col}
		}
	} else {
		l.advance() // the leading digit
	}
	l.readNumberTail()
	return token.Token{Kind: token.Numeric, Lexeme: string(l.data[start:l.pos]), Line: line, Column: col}
}

// readNumberTail consumes the remainder of a numeric literal: further
// digits, a decimal point, underscores, hex letters, and a signed
// exponent. It doesn't validate shape (that's grammar.IsIntegerLiteral /
// grammar.IsDecimalLiteral's job against the captured lexeme); it just
// finds where the literal ends.
func (l *lexer) readNumberTail() {
	allowExpSign := false
	for {
		b, ok := l.peekByte()
		if !ok {
			return
		}
		if (b == '-' || b == '+') && !allowExpSign {
			return
		}
		isExpSignSlot := allowExpSign
		allowExpSign = false
		if !(isExpSignSlot && (b == '-' || b == '+')) && b != '.' && b != '_' && !isDigit(b) && !isLetter(b) {
			return
		}
		if b == 'e' || b == 'E' {
			allowExpSign = true
		}
		l.advance()
	}
}

// readString reads a string literal delimited by quote ('"' or '`'),
// verbatim: the returned lexeme includes the quotes and any escape
// sequences exactly as written, since the data model keeps string values
// undecoded until something downstream needs the decoded bytes. A
// newline, NUL, or EOF before the closing quote ends the scan early
// (per spec, these are invalid inside a string); the resulting lexeme
// will not end in a matching quote, so grammar.IsStringLiteral correctly
// rejects it and the parser can raise a targeted error.
func (l *lexer) readString(quote byte) token.Token {
	line, col := l.line, l.col
	start := l.pos
	l.advance() // opening quote
	for {
		b, ok := l.peekByte()
		if !ok || b == '\n' || b == 0 {
			break
		}
		if b == quote {
			l.advance()
			break
		}
		if b == '\\' {
			l.advance()
			l.consumeEscape()
			continue
		}
		l.advance()
	}
	text := string(l.data[start:l.pos])
	l.fixColumn(col, text)
	return token.Token{Kind: token.String, Lexeme: text, Line: line, Column: col}
}

// consumeEscape consumes the character(s) following a backslash inside a
// string literal: \xHH (one or two hex digits), \NNN (one to three octal
// digits), or a single-character escape (\a \b \f \n \r \t \v \\ \' \").
// Anything else is consumed as a single (invalid, but non-fatal) escaped
// character, per the lexer's never-fail policy.
func (l *lexer) consumeEscape() {
	b, ok := l.peekByte()
	if !ok {
		return
	}
	switch {
	case b == 'x' || b == 'X':
		l.advance()
		for i := 0; i < 2; i++ {
			c, ok := l.peekByte()
			if !ok || !isHexDigit(c) {
				break
			}
			l.advance()
		}
	case b >= '0' && b <= '7':
		for i := 0; i < 3; i++ {
			c, ok := l.peekByte()
			if !ok || c < '0' || c > '7' {
				break
			}
			l.advance()
		}
	default:
		l.advance()
	}
}

func (l *lexer) readSlash() token.Token {
	line, col := l.line, l.col
	l.advance() // '/'
	if nb, ok := l.peekByte(); ok {
		if nb == '/' {
			l.advance()
			return token.Token{Kind: token.Comment, Lexeme: "//", Line: line, Column: col}
		}
		if nb == '*' {
			l.advance()
			return token.Token{Kind: token.Comment, Lexeme: "/*", Line: line, Column: col}
		}
	}
	return token.Token{Kind: token.Id, Lexeme: "/", Line: line, Column: col}
}

func (l *lexer) readStar() token.Token {
	line, col := l.line, l.col
	l.advance() // '*'
	if nb, ok := l.peekByte(); ok && nb == '/' {
		l.advance()
		return token.Token{Kind: token.Comment, Lexeme: "*/", Line: line, Column: col}
	}
	return token.Token{Kind: token.Id, Lexeme: "*", Line: line, Column: col}
}

// readUnrecognized consumes one rune (which may be multi-byte) that
// doesn't start any recognized token and returns it as an Id token,
// per the lexer's never-fail contract.
func (l *lexer) readUnrecognized() token.Token {
	line, col := l.line, l.col
	r, size := utf8.DecodeRune(l.data[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
	}
	lexeme := string(l.data[l.pos : l.pos+size])
	l.pos += size
	l.col++
	return token.Token{Kind: token.Id, Lexeme: lexeme, Line: line, Column: col}
}
