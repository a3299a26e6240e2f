package ast

import (
	"fmt"

	"github.com/draylundy/ProtobufGenerator/token"
)

// ParseError is a single diagnostic raised during parsing. Token is the
// offending token, if one was available at the point of failure; it is nil
// when a production fails at end-of-input with no token to blame.
type ParseError struct {
	Message string
	Token   *token.Token
}

// NewParseError builds a ParseError pointing at tok. A zero-valued tok (what
// an empty token.Queue's Peek returns) carries no position, so it yields the
// same position-less error as NewParseErrorAtEOF.
func NewParseError(message string, tok token.Token) ParseError {
	if tok == (token.Token{}) {
		return NewParseErrorAtEOF(message)
	}
	t := tok
	return ParseError{Message: message, Token: &t}
}

// NewParseErrorAtEOF builds a ParseError with no position information.
func NewParseErrorAtEOF(message string) ParseError {
	return ParseError{Message: message}
}

func (e ParseError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%s (at end of input)", e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}
