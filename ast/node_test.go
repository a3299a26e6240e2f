package ast

import (
	"testing"

	"github.com/draylundy/ProtobufGenerator/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(line, col int, lexeme string) token.Token {
	return token.Token{Kind: token.Id, Lexeme: lexeme, Line: line, Column: col}
}

func TestParentChildInvariant(t *testing.T) {
	tr := NewTree()
	root := tr.Root()
	msg := tr.NewNode(Message, "message", tok(1, 1, "message"))
	tr.AddChild(root, msg)
	name := tr.NewNode(Identifier, "Outer", tok(1, 9, "Outer"))
	tr.AddChild(msg, name)

	parent, ok := name.Parent()
	require.True(t, ok)
	assert.Equal(t, msg.ID(), parent.ID())

	found := false
	for _, c := range parent.Children() {
		if c.ID() == name.ID() {
			found = true
		}
	}
	assert.True(t, found, "parent.Children() must contain the child")

	_, ok = root.Parent()
	assert.False(t, ok, "root has no parent")
}

func TestOnlyRootHasRootKind(t *testing.T) {
	tr := NewTree()
	root := tr.Root()
	assert.True(t, root.IsRoot())

	child := tr.NewNode(Syntax, "syntax", tok(1, 1, "syntax"))
	tr.AddChild(root, child)
	assert.False(t, child.IsRoot())
}

func TestChildOrderMatchesSourcePosition(t *testing.T) {
	tr := NewTree()
	root := tr.Root()
	a := tr.NewNode(Package, "package", tok(1, 1, "package"))
	b := tr.NewNode(Option, "option", tok(2, 1, "option"))
	tr.AddChild(root, a)
	tr.AddChild(root, b)

	children := root.Children()
	require.Len(t, children, 2)
	l0, _ := children[0].Position()
	l1, _ := children[1].Position()
	assert.LessOrEqual(t, l0, l1)
}

func TestDumpIsReadable(t *testing.T) {
	tr := NewTree()
	root := tr.Root()
	syn := tr.NewNode(Syntax, "syntax", tok(1, 1, "syntax"))
	tr.AddChild(root, syn)
	lit := tr.NewNode(StringLiteral, "proto3", tok(1, 10, "proto3"))
	tr.AddChild(syn, lit)

	dump := root.Dump()
	assert.Contains(t, dump, "Syntax(syntax)")
	assert.Contains(t, dump, "StringLiteral(proto3)")
}
