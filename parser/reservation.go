package parser

import (
	"strconv"

	"github.com/draylundy/ProtobufGenerator/ast"
	"github.com/draylundy/ProtobufGenerator/grammar"
	"github.com/draylundy/ProtobufGenerator/internal/slicesx"
	"github.com/draylundy/ProtobufGenerator/token"
)

// parseReserved implements `reserved = "reserved" ( ranges | fieldNames ) ";"`.
// A leading string literal selects the field-name form; anything else is
// parsed as the integer-range form.
func (a *Analyzer) parseReserved() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Reserved, kw.Lexeme, kw)

	tok, ok := a.tokens.Peek()
	if !ok {
		a.report.Report(ast.NewParseErrorAtEOF("expected reservation list"))
		return ast.Node{}, false
	}

	var children []ast.Node
	if tok.Kind == token.String {
		children, ok = a.parseReservedNames()
	} else {
		children, ok = a.parseReservedRanges()
	}
	if !ok {
		return ast.Node{}, false
	}
	for _, c := range children {
		a.tree.AddChild(node, c)
	}
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseReservedNames parses a comma-separated list of string literals,
// the fieldNames alternative of the reserved production.
func (a *Analyzer) parseReservedNames() ([]ast.Node, bool) {
	first, ok := a.parseStringLiteral()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected reserved field name", tok))
		return nil, false
	}
	out := []ast.Node{first}
	for {
		tok, ok := a.tokens.Peek()
		if !ok || tok.Kind != token.Control || tok.Lexeme != "," {
			break
		}
		a.tokens.Dequeue()
		lit, ok := a.parseStringLiteral()
		if !ok {
			t, _ := a.tokens.Peek()
			a.report.Report(ast.NewParseError("expected reserved field name after ','", t))
			return nil, false
		}
		out = append(out, lit)
	}
	return out, true
}

// parseReservedRanges implements the integer-range reservation algorithm
// from the component design exactly: a LIFO buffer of parsed integers,
// pushed on each decimal literal and expanded in place on "to". Commas
// simply require a non-empty buffer; overlaps are never deduplicated and
// order is source order.
//
// The buffer is modeled as a plain append-only slice: the algorithm's
// "pop the last integer, then push it back followed by its expansion" is
// behaviorally a no-op on the popped value itself, so this never actually
// removes it — buf's last element is read via peek, never taken out.
func (a *Analyzer) parseReservedRanges() ([]ast.Node, bool) {
	var buf []int64
	var lits []token.Token

loop:
	for {
		tok, ok := a.tokens.Peek()
		if !ok {
			a.report.Report(ast.NewParseErrorAtEOF("unterminated reservation"))
			return nil, false
		}
		switch {
		case tok.Kind == token.Control && tok.Lexeme == ";":
			break loop
		case tok.Kind == token.Control && tok.Lexeme == ",":
			a.tokens.Dequeue()
			if len(buf) == 0 {
				a.report.Report(ast.NewParseError("',' with no preceding integer", tok))
				return nil, false
			}
		case tok.Kind == token.Id && tok.Lexeme == "to":
			a.tokens.Dequeue()
			if len(buf) == 0 {
				a.report.Report(ast.NewParseError("'to' with no preceding integer", tok))
				return nil, false
			}
			start, _ := slicesx.Last(buf) // non-empty, just checked above
			endTok, ok := a.tokens.Peek()
			if !ok || endTok.Kind != token.Numeric || !grammar.IsDecimalLiteral(endTok.Lexeme) {
				a.report.Report(ast.NewParseError("expected integer after 'to'", endTok))
				return nil, false
			}
			a.tokens.Dequeue()
			end, _ := strconv.ParseInt(endTok.Lexeme, 10, 64)
			for v := start + 1; v <= end; v++ {
				buf = append(buf, v)
				lits = append(lits, endTok)
			}
		case tok.Kind == token.Numeric && grammar.IsDecimalLiteral(tok.Lexeme):
			a.tokens.Dequeue()
			v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
			buf = append(buf, v)
			lits = append(lits, tok)
		default:
			a.report.Report(ast.NewParseError("invalid reservation entry", tok))
			return nil, false
		}
	}

	out := make([]ast.Node, len(buf))
	for i, v := range buf {
		out[i] = a.tree.NewNode(ast.IntegerLiteral, strconv.FormatInt(v, 10), lits[i])
	}
	return out, true
}
