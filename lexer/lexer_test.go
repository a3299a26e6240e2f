package lexer

import (
	"testing"

	"github.com/draylundy/ProtobufGenerator/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(q *token.Queue) []token.Token {
	var out []token.Token
	for q.Len() > 0 {
		tok, _ := q.Dequeue()
		out = append(out, tok)
	}
	return out
}

func TestLexIdentifiersAndKeywordsAreIdKind(t *testing.T) {
	toks := drain(Lex([]byte("syntax message foo_bar2")))
	require.Len(t, toks, 3)
	for _, tk := range toks {
		assert.Equal(t, token.Id, tk.Kind)
	}
	assert.Equal(t, "foo_bar2", toks[2].Lexeme)
}

func TestLexNumericLiterals(t *testing.T) {
	toks := drain(Lex([]byte("123 0x1F 017 3.14 6.02e23 .5")))
	require.Len(t, toks, 6)
	for _, tk := range toks {
		assert.Equal(t, token.Numeric, tk.Kind, "lexeme %q", tk.Lexeme)
	}
	assert.Equal(t, ".5", toks[5].Lexeme)
}

func TestLexLeadingDotNotFollowedByDigitIsControl(t *testing.T) {
	toks := drain(Lex([]byte(".foo")))
	require.Len(t, toks, 2)
	assert.Equal(t, token.Control, toks[0].Kind)
	assert.Equal(t, ".", toks[0].Lexeme)
	assert.Equal(t, token.Id, toks[1].Kind)
}

func TestLexStringLiteralVerbatimIncludingEscapes(t *testing.T) {
	toks := drain(Lex([]byte(`"hello\nworld\x41"`)))
	require.Len(t, toks, 1)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `"hello\nworld\x41"`, toks[0].Lexeme)
}

func TestLexUnterminatedStringStopsAtNewlineWithoutFailing(t *testing.T) {
	toks := drain(Lex([]byte("\"abc\ndef\"")))
	// The malformed literal ends at the newline; the newline itself and
	// everything after still tokenizes normally.
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `"abc`, toks[0].Lexeme)
	assert.Equal(t, token.EndLine, toks[1].Kind)
}

func TestLexControlPunctuation(t *testing.T) {
	toks := drain(Lex([]byte("{}()<>[];,=")))
	kinds := make([]token.Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	for _, k := range kinds {
		assert.Equal(t, token.Control, k)
	}
	assert.Len(t, toks, 11)
}

func TestLexCommentDelimitersAreCommentKind(t *testing.T) {
	toks := drain(Lex([]byte("// hi\n/* block */")))
	require.True(t, len(toks) >= 4)
	assert.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "//", toks[0].Lexeme)

	var sawOpen, sawClose bool
	for _, tk := range toks {
		if tk.Kind == token.Comment && tk.Lexeme == "/*" {
			sawOpen = true
		}
		if tk.Kind == token.Comment && tk.Lexeme == "*/" {
			sawClose = true
		}
	}
	assert.True(t, sawOpen)
	assert.True(t, sawClose)
}

func TestLexLoneSlashAndStarAreUnrecognizedId(t *testing.T) {
	toks := drain(Lex([]byte("/ *")))
	require.Len(t, toks, 2)
	assert.Equal(t, token.Id, toks[0].Kind)
	assert.Equal(t, "/", toks[0].Lexeme)
	assert.Equal(t, token.Id, toks[1].Kind)
	assert.Equal(t, "*", toks[1].Lexeme)
}

func TestLexEndLineAtEachNewline(t *testing.T) {
	toks := drain(Lex([]byte("a\nb\n")))
	require.Len(t, toks, 4)
	assert.Equal(t, token.EndLine, toks[1].Kind)
	assert.Equal(t, token.EndLine, toks[3].Kind)
}

func TestLexWhitespaceOtherThanNewlineIsDiscarded(t *testing.T) {
	toks := drain(Lex([]byte("  a\t\tb  ")))
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Lexeme)
	assert.Equal(t, "b", toks[1].Lexeme)
}

func TestLexNeverFailsOnUnrecognizedBytes(t *testing.T) {
	toks := drain(Lex([]byte("a#$b")))
	require.Len(t, toks, 4)
	for _, tk := range toks {
		assert.NotEqual(t, token.Kind(99), tk.Kind) // always a valid Kind
	}
	assert.Equal(t, "#", toks[1].Lexeme)
	assert.Equal(t, "$", toks[2].Lexeme)
}

func TestLexTracksLineAndColumn(t *testing.T) {
	toks := drain(Lex([]byte("ab\ncd")))
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 1, toks[2].Column)
}

func TestLexFullIdentifierIsNotMergedByLexer(t *testing.T) {
	// google.protobuf.Any should come out as Id, Control(.), Id, ...
	// since joining dotted identifiers is the parser's job, not the
	// lexer's.
	toks := drain(Lex([]byte("google.protobuf.Any")))
	require.Len(t, toks, 5)
	assert.Equal(t, token.Id, toks[0].Kind)
	assert.Equal(t, token.Control, toks[1].Kind)
	assert.Equal(t, ".", toks[1].Lexeme)
}
