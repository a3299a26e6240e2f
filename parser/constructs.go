package parser

import (
	"github.com/draylundy/ProtobufGenerator/ast"
	"github.com/draylundy/ProtobufGenerator/grammar"
	"github.com/draylundy/ProtobufGenerator/token"
)

// parseSyntax implements `syntax = "syntax" "=" strLit ";"`.
func (a *Analyzer) parseSyntax() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Syntax, kw.Lexeme, kw)
	if !a.expectControl("=", "'='") {
		return ast.Node{}, false
	}
	lit, ok := a.parseStringLiteral()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected string literal after 'syntax ='", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, lit)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseImport implements `import = "import" ["weak"|"public"] strLit ";"`.
func (a *Analyzer) parseImport() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Import, kw.Lexeme, kw)
	if tok, ok := a.tokens.Peek(); ok && tok.Kind == token.Id && grammar.IsImportModifier(tok.Lexeme) {
		a.tokens.Dequeue()
		a.tree.AddChild(node, a.tree.NewNode(ast.ImportModifier, tok.Lexeme, tok))
	}
	lit, ok := a.parseStringLiteral()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected string literal in import", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, lit)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parsePackage implements `package = "package" fullIdent ";"`.
func (a *Analyzer) parsePackage() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Package, kw.Lexeme, kw)
	ident, ok := a.parseFullIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected identifier after 'package'", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, ident)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseOption implements `option = "option" optionName "=" strLit ";"`.
// The value must be a string literal; any other constant form (number,
// boolean, identifier) is reported as "expected option value".
func (a *Analyzer) parseOption() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Option, kw.Lexeme, kw)
	name, ok := a.parseFullIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected option name", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, name)
	if !a.expectControl("=", "'='") {
		return ast.Node{}, false
	}
	val, ok := a.parseStringLiteral()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected option value", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, val)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseEnum implements
// `enum = "enum" enumName "{" { option | enumField | emptyStatement } "}"`.
func (a *Analyzer) parseEnum() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Enum, kw.Lexeme, kw)
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected enum name", tok))
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
			a.report.Report(ast.NewParseErrorAtEOF("unterminated enum body"))
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
		case tok.Kind == token.Id && grammar.IsIdentifier(tok.Lexeme):
			if field, ok := a.parseEnumConstant(); ok {
				a.tree.AddChild(node, field)
			}
		default:
			a.report.Report(ast.NewParseError("invalid enum body statement", tok))
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

// parseEnumConstant implements `enumField = identifier "=" intLit ";"`.
// The closed Kind enumeration's EnumField is reserved (see DESIGN.md);
// EnumConstant is what an enum member actually gets.
func (a *Analyzer) parseEnumConstant() (ast.Node, bool) {
	first, ok := a.tokens.Peek()
	if !ok || first.Kind != token.Id || !grammar.IsIdentifier(first.Lexeme) {
		return ast.Node{}, false
	}
	node := a.tree.NewNode(ast.EnumConstant, "", first)
	name, _ := a.parseIdentifier() // guaranteed to succeed: already peeked above
	a.tree.AddChild(node, name)
	if !a.expectControl("=", "'='") {
		return ast.Node{}, false
	}
	num, ok := a.parseIntegerLiteral()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected integer literal in enum constant", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, num)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// parseMessage implements
// `message = "message" messageName "{" { field | enum | message | option |
// oneof | mapField | reserved | emptyStatement } "}"`.
func (a *Analyzer) parseMessage() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Message, kw.Lexeme, kw)
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected message name", tok))
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
			a.report.Report(ast.NewParseErrorAtEOF("unterminated message body"))
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
		case tok.Kind == token.Id && grammar.IsEnum(tok.Lexeme):
			if nested, ok := a.parseEnum(); ok {
				a.tree.AddChild(node, nested)
			}
		case tok.Kind == token.Id && grammar.IsMessage(tok.Lexeme):
			if nested, ok := a.parseMessage(); ok {
				a.tree.AddChild(node, nested)
			}
		case tok.Kind == token.Id && tok.Lexeme == "oneof":
			if oneof, ok := a.parseOneOf(); ok {
				a.tree.AddChild(node, oneof)
			}
		case tok.Kind == token.Id && tok.Lexeme == "map":
			if mf, ok := a.parseMapField(); ok {
				a.tree.AddChild(node, mf)
			}
		case tok.Kind == token.Id && tok.Lexeme == "reserved":
			if res, ok := a.parseReserved(); ok {
				a.tree.AddChild(node, res)
			}
		case tok.Kind == token.Id && grammar.IsFieldStart(tok.Lexeme):
			if field, ok := a.parseField(); ok {
				a.tree.AddChild(node, field)
			}
		default:
			a.report.Report(ast.NewParseError("invalid message body statement", tok))
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

// parseField implements
// `field = ["repeated"] type fieldName "=" fieldNumber ["[" fieldOptions "]"] ";"`.
// type is a Type node when it names a basic type, else a UserType node
// wrapping a full identifier. The Field node's own Value mirrors the
// resolved type name (see DESIGN.md's construct-Value convention).
func (a *Analyzer) parseField() (ast.Node, bool) {
	first, ok := a.tokens.Peek()
	if !ok {
		return ast.Node{}, false
	}
	var repeatedTok token.Token
	hasRepeated := false
	if first.Kind == token.Id && grammar.IsRepeated(first.Lexeme) {
		repeatedTok = first
		hasRepeated = true
		a.tokens.Dequeue()
	}

	typeTok, ok := a.tokens.Peek()
	if !ok || typeTok.Kind != token.Id {
		a.report.Report(ast.NewParseError("expected field type", typeTok))
		return ast.Node{}, false
	}

	var typeNode ast.Node
	var typeName string
	if grammar.IsBasicType(typeTok.Lexeme) {
		a.tokens.Dequeue()
		typeName = typeTok.Lexeme
		typeNode = a.tree.NewNode(ast.Type, typeName, typeTok)
	} else {
		full, ok := a.parseFullIdentifier()
		if !ok {
			a.report.Report(ast.NewParseError("expected field type", typeTok))
			return ast.Node{}, false
		}
		typeName = full.Value()
		typeNode = a.tree.NewNode(ast.UserType, typeName, typeTok)
		a.tree.AddChild(typeNode, full)
	}

	node := a.tree.NewNode(ast.Field, typeName, first)
	if hasRepeated {
		a.tree.AddChild(node, a.tree.NewNode(ast.Repeated, repeatedTok.Lexeme, repeatedTok))
	}
	a.tree.AddChild(node, typeNode)

	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected field name", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, name)
	if !a.expectControl("=", "'='") {
		return ast.Node{}, false
	}
	num, ok := a.parseFieldNumber()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected field number", tok))
		return ast.Node{}, false
	}
	a.tree.AddChild(node, num)
	a.skipFieldOptions()
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}

// skipFieldOptions consumes an optional "[ ... ]" field-options suffix
// without building any nodes for it: the closed Kind enumeration has no
// slot for field-level options distinct from the top-level Option
// construct, so bracketed field options are recognized and discarded
// syntactically rather than invented a new kind for.
func (a *Analyzer) skipFieldOptions() {
	tok, ok := a.tokens.Peek()
	if !ok || tok.Kind != token.Control || tok.Lexeme != "[" {
		return
	}
	a.tokens.Dequeue()
	depth := 1
	for depth > 0 {
		t, ok := a.tokens.Dequeue()
		if !ok {
			a.report.Report(ast.NewParseErrorAtEOF("unterminated field options"))
			return
		}
		if t.Kind == token.Control && t.Lexeme == "[" {
			depth++
		}
		if t.Kind == token.Control && t.Lexeme == "]" {
			depth--
		}
	}
}

// parseOneOf implements the prose grammar in the component design:
// `oneof = "oneof" oneofName "{" (field | nested-oneof | emptyStatement)* "}"`.
// There is no separate "OneOf" kind in the closed enumeration — only
// OneOfField — so that single kind names the whole construct node; the
// fields nested inside it are plain Field nodes, same as a message body.
func (a *Analyzer) parseOneOf() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.OneOfField, kw.Lexeme, kw)
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected oneof name", tok))
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
			a.report.Report(ast.NewParseErrorAtEOF("unterminated oneof body"))
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
		case tok.Kind == token.Id && tok.Lexeme == "oneof":
			if nested, ok := a.parseOneOf(); ok {
				a.tree.AddChild(node, nested)
			}
		case tok.Kind == token.Id && grammar.IsFieldStart(tok.Lexeme):
			if field, ok := a.parseField(); ok {
				a.tree.AddChild(node, field)
			}
		default:
			a.report.Report(ast.NewParseError("invalid oneof body statement", tok))
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

// parseMapField implements
// `mapField = "map" "<" keyType "," type ">" mapName "=" fieldNumber ";"`.
// Children are attached name-first — Identifier, MapKey, MapValue,
// FieldNumber — matching the worked map example in the data model rather
// than raw lexical order (see DESIGN.md).
func (a *Analyzer) parseMapField() (ast.Node, bool) {
	kw, _ := a.tokens.Dequeue()
	node := a.tree.NewNode(ast.Map, kw.Lexeme, kw)
	if !a.expectControl("<", "'<'") {
		return ast.Node{}, false
	}
	keyTok, ok := a.tokens.Peek()
	if !ok || keyTok.Kind != token.Id || !grammar.IsMapKeyType(keyTok.Lexeme) {
		a.report.Report(ast.NewParseError("expected map key type", keyTok))
		return ast.Node{}, false
	}
	a.tokens.Dequeue()
	keyNode := a.tree.NewNode(ast.MapKey, keyTok.Lexeme, keyTok)

	if !a.expectControl(",", "','") {
		return ast.Node{}, false
	}

	valTok, ok := a.tokens.Peek()
	if !ok {
		a.report.Report(ast.NewParseErrorAtEOF("expected map value type"))
		return ast.Node{}, false
	}
	var valNode ast.Node
	if valTok.Kind == token.Id && grammar.IsBasicType(valTok.Lexeme) {
		a.tokens.Dequeue()
		valNode = a.tree.NewNode(ast.MapValue, valTok.Lexeme, valTok)
	} else {
		full, ok := a.parseFullIdentifier()
		if !ok {
			a.report.Report(ast.NewParseError("expected map value type", valTok))
			return ast.Node{}, false
		}
		valNode = a.tree.NewNode(ast.MapValue, full.Value(), valTok)
	}

	if !a.expectControl(">", "'>'") {
		return ast.Node{}, false
	}
	name, ok := a.parseIdentifier()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected map field name", tok))
		return ast.Node{}, false
	}
	if !a.expectControl("=", "'='") {
		return ast.Node{}, false
	}
	num, ok := a.parseFieldNumber()
	if !ok {
		tok, _ := a.tokens.Peek()
		a.report.Report(ast.NewParseError("expected field number", tok))
		return ast.Node{}, false
	}

	a.tree.AddChild(node, name)
	a.tree.AddChild(node, keyNode)
	a.tree.AddChild(node, valNode)
	a.tree.AddChild(node, num)
	a.terminateSingleLineStatement()
	a.scoopComment(node)
	a.dumpEndline()
	return node, true
}
