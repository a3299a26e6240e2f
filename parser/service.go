package parser

import (
	"github.com/draylundy/ProtobufGenerator/ast"
	"github.com/draylundy/ProtobufGenerator/grammar"
	"github.com/draylundy/ProtobufGenerator/token"
)

// parseService implements
// `service = "service" serviceName "{" { option | rpc | emptyStatement } "}"`.
// This production is a supplement: the component design leaves service
// parsing as a no-op and explicitly invites a full implementation without
// affecting anything else in the core.
func (a *Analyzer) parseService() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Service, kw.Lexeme, kw)
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected service name", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, name)
	if !a.expectControl("{", "'{'") {
		return ast.Node{}, false
	}
	a.dumpEndline()
	for {
		a.dumpEndline()
		tok, ok := a.tokens.Peek()
		if !ok {
			a.report.Report(ast.NewParseErrorAtEOF("unterminated service body"))
			break
		}
		if tok.Kind == token.Control && tok.Lexeme == "}" {
			a.tokens.Dequeue()
			break
		}
		before := a.tokens.Len()
		switch {
		case tok.Kind == token.Control && grammar.IsEmptyStatement(tok.Lexeme):
			a.tokens.Dequeue()
		case tok.Kind == token.Comment:
			a.tree.AddChild(node, a.parseComment())
		case tok.Kind == token.Id && grammar.IsOption(tok.Lexeme):
			if opt, ok := a.parseOption(); ok {
				a.tree.AddChild(node, opt)
			}
		case tok.Kind == token.Id && tok.Lexeme == "rpc":
			for _, child := range a.parseRPC() {
				a.tree.AddChild(node, child)
			}
		default:
			a.report.Report(ast.NewParseError("invalid service body statement", tok))
			a.tokens.Dequeue()
		}
		if !a.ensureProgress(before) {
			break
		}
	}
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseRPC implements
// `rpc = "rpc" rpcName "(" ["stream"] messageType ")" "returns" "("
// ["stream"] messageType ")" (( "{" { option | emptyStatement } "}" ) | ";")`.
//
// Its result is flattened directly into the enclosing service's children
// instead of wrapped in a per-rpc node: the closed Kind enumeration has
// no "Rpc"/"Method" kind, only ServiceInputType, ServiceReturnType, and
// Streaming, so an rpc call contributes its name, its input type, and its
// return type as three siblings under Service. An empty slice means the
// rpc was malformed; parseRPC has already recorded why.
func (a *Analyzer) parseRPC() []ast.Node {
	a.tokens.Dequeue() // "rpc"
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected rpc name", tok))
		return nil
	}
	if !a.expectControl("(", "'('") {
		return nil
	}
	inType, ok := a.parseRPCType(ast.ServiceInputType)
	if !ok {
		return nil
	}
	if !a.expectControl(")", "')'") {
		return nil
	}
	retTok, ok := a.tokens.Peek()
	if !ok || retTok.Kind != token.Id || retTok.Lexeme != "returns" {
		a.report.Report(ast.NewParseError("expected 'returns'", retTok))
		return nil
	}
	a.tokens.Dequeue()
	if !a.expectControl("(", "'('") {
		return nil
	}
	outType, ok := a.parseRPCType(ast.ServiceReturnType)
	if !ok {
		return nil
	}
	if !a.expectControl(")", "')'") {
		return nil
	}

	tok, ok := a.tokens.Peek()
	if ok && tok.Kind == token.Control && tok.Lexeme == "{" {
		a.parseRPCBody()
	} else {
		a.terminateSingleLineStatement()
	}
	a.dumpEndline()
	return []ast.Node{name, inType, outType}
}

// parseRPCBody consumes an rpc's optional `{ option | emptyStatement }`
// body. Options found here have no attachment point in the flattened rpc
// shape parseRPC returns, so they're parsed (to stay in sync with the
// token stream and catch malformed options) and discarded.
func (a *Analyzer) parseRPCBody() {
	a.tokens.Dequeue() // '{'
	a.dumpEndline()
	for {
		a.dumpEndline()
		tok, ok := a.tokens.Peek()
		if !ok {
			a.report.Report(ast.NewParseErrorAtEOF("unterminated rpc body"))
			return
		}
		if tok.Kind == token.Control && tok.Lexeme == "}" {
			a.tokens.Dequeue()
			return
		}
		before := a.tokens.Len()
		switch {
		case tok.Kind == token.Control && grammar.IsEmptyStatement(tok.Lexeme):
			a.tokens.Dequeue()
		case tok.Kind == token.Id && grammar.IsOption(tok.Lexeme):
			a.parseOption()
		default:
			a.report.Report(ast.NewParseError("invalid rpc body statement", tok))
			a.tokens.Dequeue()
		}
		if !a.ensureProgress(before) {
			return
		}
	}
}

// parseRPCType parses `["stream"] messageType` into a node of the given
// kind (ServiceInputType or ServiceReturnType), with an optional
// Streaming child marking the "stream" keyword.
func (a *Analyzer) parseRPCType(kind ast.Kind) (ast.Node, bool) {
	first, ok := a.tokens.Peek()
	if !ok {
		a.report.Report(ast.NewParseErrorAtEOF("expected rpc message type"))
		return ast.Node{}, false
	}
	pos := first
	var streamTok token.Token
	hasStream := false
	if first.Kind == token.Id && first.Lexeme == "stream" {
		streamTok = first
		hasStream = true
		a.tokens.Dequeue()
		first, ok = a.tokens.Peek()
		if !ok {
			a.report.Report(ast.NewParseErrorAtEOF("expected rpc message type"))
			return ast.Node{}, false
		}
	}
	typeIdent, ok := a.parseFullIdentifier()
	if !ok {
		a.report.Report(ast.NewParseError("expected rpc message type", first))
		return ast.Node{}, false
	}
	node := a.tree.NewNode(kind, typeIdent.Value(), pos)
	if hasStream {
		a.tree.AddChild(node, a.tree.NewNode(ast.Streaming, streamTok.Lexeme, streamTok))
	}
	a.tree.AddChild(node, typeIdent)
	return node, true
}
