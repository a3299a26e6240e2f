// Package parser implements the recursive-descent syntax analyzer: it
// consumes the token.Queue the lexer produces and builds an *ast.Tree,
// collecting ast.ParseErrors along the way instead of aborting.
//
// The entry point is Analyze. The productions, each named after the
// grammar rule it implements, live in constructs.go, reservation.go, and
// service.go; this file holds the shared dispatch loop, the recovery
// helpers (burnLine, ensureProgress, expectControl), and the small helper
// contracts every production is built out of
// (terminateSingleLineStatement, scoopComment, dumpEndline,
// parseStringLiteral/parseIdentifier/parseFullIdentifier), grounded on
// parser/parser.go's Parse entry point and its helper contracts.
package parser

import (
	"fmt"
	"strings"

	"github.com/draylundy/ProtobufGenerator/ast"
	"github.com/draylundy/ProtobufGenerator/grammar"
	"github.com/draylundy/ProtobufGenerator/lexer"
	"github.com/draylundy/ProtobufGenerator/reporter"
	"github.com/draylundy/ProtobufGenerator/token"
	"github.com/petermattis/goid"
)

// Analyzer drives one parse from a token.Queue to a finished *ast.Tree.
// It is not safe for concurrent use: a single Analyzer is built and
// driven by exactly one goroutine, enforced by assertOwner. Distinct
// Analyzers may run concurrently on distinct goroutines with no
// coordination required between them.
type Analyzer struct {
	tree     *ast.Tree
	tokens   *token.Queue
	report   *reporter.Handler
	ownerGID int64
}

// New builds an Analyzer over an already-tokenized stream.
func New(tokens *token.Queue) *Analyzer {
	return &Analyzer{
		tree:     ast.NewTree(),
		tokens:   tokens,
		report:   reporter.NewHandler(),
		ownerGID: goid.Get(),
	}
}

// assertOwner panics if called from a goroutine other than the one that
// created this Analyzer. The data model promises a single parse has no
// cross-goroutine mutation; this turns a violation of that promise into
// an immediate, loud failure instead of a subtle race.
func (a *Analyzer) assertOwner() {
	if g := goid.Get(); g != a.ownerGID {
		panic(fmt.Sprintf("parser: Analyzer used from goroutine %d, created on %d", g, a.ownerGID))
	}
}

// Analyze tokenizes src and runs a full parse, returning the resulting
// tree (whose Root() is the RootNode of the data model) and the error
// list accumulated along the way. The tree's Errors() method returns the
// same list, already attached to the root per the RootNode lifecycle.
func Analyze(src []byte) (*ast.Tree, []ast.ParseError) {
	a := New(lexer.Lex(src))
	return a.analyze()
}

func (a *Analyzer) analyze() (*ast.Tree, []ast.ParseError) {
	a.assertOwner()
	root := a.tree.Root()
	for a.tokens.Len() > 0 {
		stmt, ok := a.parseTopLevelStatement()
		if ok {
			a.tree.AddChild(root, stmt)
		}
	}
	errs := a.report.Errors()
	a.tree.AttachErrors(errs)
	return a.tree, errs
}

// parseTopLevelStatement peeks the next token and dispatches by lexeme in
// priority order: inline comment, multi-line comment, syntax, import,
// package, option, enum, service, message. A token that is neither a
// Comment nor an Id is an invalid top-level construct; the current line
// is burned and the caller re-peeks on its next loop iteration.
func (a *Analyzer) parseTopLevelStatement() (ast.Node, bool) {
	tok, ok := a.tokens.Peek()
	if !ok {
		return ast.Node{}, false
	}
	if tok.Kind != token.Comment && tok.Kind != token.Id {
		a.report.Report(ast.NewParseError("invalid top level statement", tok))
		a.burnLine()
		return ast.Node{}, false
	}
	switch {
	case tok.Kind == token.Comment && (grammar.IsInlineComment(tok.Lexeme) || grammar.IsMultilineCommentOpen(tok.Lexeme)):
		return a.parseComment(), true
	case grammar.IsSyntax(tok.Lexeme):
		return a.parseSyntax()
	case grammar.IsImport(tok.Lexeme):
		return a.parseImport()
	case grammar.IsPackage(tok.Lexeme):
		return a.parsePackage()
	case grammar.IsOption(tok.Lexeme):
		return a.parseOption()
	case grammar.IsEnum(tok.Lexeme):
		return a.parseEnum()
	case grammar.IsService(tok.Lexeme):
		return a.parseService()
	case grammar.IsMessage(tok.Lexeme):
		return a.parseMessage()
	default:
		a.report.Report(ast.NewParseError(fmt.Sprintf("invalid top level statement %q", tok.Lexeme), tok))
		a.burnLine()
		return ast.Node{}, false
	}
}

// burnLine discards tokens up to and including the next EndLine, the
// top-level recovery strategy for an invalid statement.
func (a *Analyzer) burnLine() {
	for {
		tok, ok := a.tokens.Peek()
		if !ok {
			return
		}
		a.tokens.Dequeue()
		if tok.Kind == token.EndLine {
			return
		}
	}
}

// ensureProgress is the block-body progress guarantee: if the current
// iteration consumed no token at all, it force-discards exactly one so
// the enclosing loop cannot spin forever. Every production invoked from
// a block body already consumes at least its leading keyword before it
// can fail, so this is a backstop rather than the primary recovery path.
func (a *Analyzer) ensureProgress(tokensBefore int) bool {
	if a.tokens.Len() != tokensBefore {
		return true
	}
	tok, ok := a.tokens.Dequeue()
	if !ok {
		return false
	}
	a.report.Report(ast.NewParseError("no production matched; discarding token", tok))
	return true
}

// terminateSingleLineStatement dequeues a token and reports an error if
// it isn't ';'. It never aborts its caller.
func (a *Analyzer) terminateSingleLineStatement() {
	tok, ok := a.tokens.Dequeue()
	if !ok {
		a.report.Report(ast.NewParseErrorAtEOF("expected ';'"))
		return
	}
	if !(tok.Kind == token.Control && grammar.IsEmptyStatement(tok.Lexeme)) {
		a.report.Report(ast.NewParseError(fmt.Sprintf("expected ';', found %q", tok.Lexeme), tok))
	}
}

// dumpEndline consumes a single trailing EndLine token, if present.
func (a *Analyzer) dumpEndline() {
	if tok, ok := a.tokens.Peek(); ok && tok.Kind == token.EndLine {
		a.tokens.Dequeue()
	}
}

// scoopComment attaches a trailing inline comment to parent, if the next
// token is an inline-comment opener. Block comments are not scooped this
// way; they stand as their own top-level or body-level statement.
func (a *Analyzer) scoopComment(parent ast.Node) {
	tok, ok := a.tokens.Peek()
	if !ok || tok.Kind != token.Comment || !grammar.IsInlineComment(tok.Lexeme) {
		return
	}
	a.tree.AddChild(parent, a.parseComment())
}

// parseComment consumes a comment opener ("//" or "/*") already confirmed
// present at the front of the queue and returns a Comment node with a
// single CommentText child. Inline comments collect lexemes until the
// next EndLine; block comments collect until "*/", converting EndLine
// tokens into literal newlines and discarding Control-kind tokens, per
// the comment-handling contract.
func (a *Analyzer) parseComment() ast.Node {
	opener, _ := a.tokens.Dequeue()
	comment := a.tree.NewNode(ast.Comment, opener.Lexeme, opener)

	var text strings.Builder
	if grammar.IsInlineComment(opener.Lexeme) {
		for {
			tok, ok := a.tokens.Peek()
			if !ok || tok.Kind == token.EndLine {
				break
			}
			a.tokens.Dequeue()
			if text.Len() > 0 {
				text.WriteByte(' ')
			}
			text.WriteString(tok.Lexeme)
		}
	} else {
		for {
			tok, ok := a.tokens.Dequeue()
			if !ok {
				a.report.Report(ast.NewParseErrorAtEOF("unterminated block comment"))
				break
			}
			if tok.Kind == token.Comment && grammar.IsMultilineCommentClose(tok.Lexeme) {
				break
			}
			if tok.Kind == token.EndLine {
				text.WriteByte('\n')
				continue
			}
			if tok.Kind == token.Control {
				continue
			}
			if s := text.String(); text.Len() > 0 && !strings.HasSuffix(s, "\n") {
				text.WriteByte(' ')
			}
			text.WriteString(tok.Lexeme)
		}
	}

	textNode := a.tree.NewNode(ast.CommentText, text.String(), opener)
	a.tree.AddChild(comment, textNode)
	return comment
}

// expectControl peeks the next token; if it is a Control token with the
// given lexeme it is consumed, otherwise an error is reported and the
// token is left in the queue. It reports whether the expected token was
// found.
func (a *Analyzer) expectControl(lexeme, what string) bool {
	tok, ok := a.tokens.Peek()
	if !ok {
		a.report.Report(ast.NewParseErrorAtEOF(fmt.Sprintf("expected %s", what)))
		return false
	}
	if tok.Kind != token.Control || tok.Lexeme != lexeme {
		a.report.Report(ast.NewParseError(fmt.Sprintf("expected %s, found %q", what, tok.Lexeme), tok))
		return false
	}
	a.tokens.Dequeue()
	return true
}

// parseStringLiteral peeks the next token; if it is a string literal, it
// is consumed and returned as a StringLiteral node whose Value has its
// surrounding quotes stripped. Otherwise the stream is left untouched and
// ok is false.
func (a *Analyzer) parseStringLiteral() (node ast.Node, ok bool) {
	tok, present := a.tokens.Peek()
	if !present || tok.Kind != token.String || !grammar.IsStringLiteral(tok.Lexeme) {
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	return a.tree.NewNode(ast.StringLiteral, unquote(tok.Lexeme), tok), true
}

func unquote(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	return lexeme[1 : len(lexeme)-1]
}

// parseIdentifier peeks the next token; if it is a bare identifier, it is
// consumed and returned as an Identifier node. Otherwise the stream is
// left untouched and ok is false.
func (a *Analyzer) parseIdentifier() (ast.Node, bool) {
	tok, ok := a.tokens.Peek()
	if !ok || tok.Kind != token.Id || !grammar.IsIdentifier(tok.Lexeme) {
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	return a.tree.NewNode(ast.Identifier, tok.Lexeme, tok), true
}

// parseFullIdentifier parses one or more dot-joined identifiers into a
// single Identifier node, e.g. "google.protobuf.Any". The lexer never
// merges these itself (each '.' is its own Control token), so this is
// the one place that reassembles a full identifier's text.
func (a *Analyzer) parseFullIdentifier() (ast.Node, bool) {
	first, ok := a.tokens.Peek()
	if !ok || first.Kind != token.Id || !grammar.IsIdentifier(first.Lexeme) {
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	var b strings.Builder
	b.WriteString(first.Lexeme)
	for {
		dot, ok := a.tokens.Peek()
		if !ok || dot.Kind != token.Control || dot.Lexeme != "." {
			break
		}
		next, ok := a.tokens.PeekAt(1)
		if !ok || next.Kind != token.Id || !grammar.IsIdentifier(next.Lexeme) {
			break
		}
		a.tokens.Dequeue() // '.'
		a.tokens.Dequeue() // next identifier segment
		b.WriteByte('.')
		b.WriteString(next.Lexeme)
	}
	return a.tree.NewNode(ast.Identifier, b.String(), first), true
}

// parseIntegerLiteral peeks the next token; if it is an integer literal
// (decimal, octal, or hex), it is consumed and returned as an
// IntegerLiteral node.
func (a *Analyzer) parseIntegerLiteral() (ast.Node, bool) {
	tok, ok := a.tokens.Peek()
	if !ok || tok.Kind != token.Numeric || !grammar.IsIntegerLiteral(tok.Lexeme) {
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	return a.tree.NewNode(ast.IntegerLiteral, tok.Lexeme, tok), true
}

// parseFieldNumber peeks the next token; if it is an integer literal, it is
// consumed and returned as a FieldNumber node. field and mapField are the
// two grammar rules whose trailing integer is a fieldNumber rather than a
// bare intLit (see Scenarios C and D); enumField's integer stays an
// IntegerLiteral via parseIntegerLiteral.
func (a *Analyzer) parseFieldNumber() (ast.Node, bool) {
	tok, ok := a.tokens.Peek()
	if !ok || tok.Kind != token.Numeric || !grammar.IsIntegerLiteral(tok.Lexeme) {
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	return a.tree.NewNode(ast.FieldNumber, tok.Lexeme, tok), true
}
