// Package ast defines the uniform AST node model produced by the parser:
// every node, from the file root down to a single integer literal, is the
// same Go type, tagged with a Kind and a textual Value, carrying an
// ordered list of children.
//
// Nodes live in a Tree, which owns an arena (see internal/arena) of node
// records; a Node value is a cheap, comparable handle into that arena
// rather than a live pointer. This sidesteps the parent/children reference
// cycle a naive pointer-based tree would create: dropping a Tree reclaims
// every node in it at once, and a Node's "parent" link is just an integer
// that happens to be meaningless once its Tree is gone, never a pointer
// that could be dereferenced after the fact.
package ast

import (
	"strings"

	"github.com/draylundy/ProtobufGenerator/internal/arena"
	"github.com/draylundy/ProtobufGenerator/token"
)

type nodeData struct {
	kind     Kind
	value    string
	line     int
	column   int
	parent   arena.Untyped
	children []arena.Untyped
}

// Tree owns every node produced by a single parse. Its zero value is not
// usable; construct one with NewTree.
type Tree struct {
	arena arena.Arena[nodeData]
	root  arena.Untyped
	errs  []ParseError
}

// NewTree allocates a fresh tree with its Root node already in place.
func NewTree() *Tree {
	t := &Tree{}
	t.root = arena.Untyped(t.arena.New(nodeData{kind: Root}))
	return t
}

// Root returns the tree's root node.
func (t *Tree) Root() Node {
	return Node{tree: t, id: t.root}
}

// NewNode allocates a detached node: it has no parent and no children
// until AddChild is called (by its own production rule, per the node
// lifecycle in the data model). pos is the position of the token that
// introduced the node, used for debugging and for the child-ordering
// invariant; composite nodes should pass the position of their first
// consumed token.
func (t *Tree) NewNode(kind Kind, value string, pos token.Token) Node {
	id := arena.Untyped(t.arena.New(nodeData{
		kind:   kind,
		value:  value,
		line:   pos.Line,
		column: pos.Column,
	}))
	return Node{tree: t, id: id}
}

// AddChild appends child to parent's children and sets child's parent
// link. A node may only ever be added as a child once; this is the only
// mutation a node undergoes after construction.
func (t *Tree) AddChild(parent, child Node) {
	if parent.tree != t || child.tree != t {
		panic("ast: AddChild across two different trees")
	}
	pd := t.arena.At(parent.id)
	pd.children = append(pd.children, child.id)
	cd := t.arena.At(child.id)
	cd.parent = parent.id
}

// AttachErrors transfers the parser's accumulated error list to the root
// node, per the RootNode lifecycle in the data model. It should be called
// exactly once, at analysis completion.
func (t *Tree) AttachErrors(errs []ParseError) {
	t.errs = errs
}

// Errors returns the error list attached to this tree's root, if any.
func (t *Tree) Errors() []ParseError {
	return t.errs
}

// Node is a handle to a single AST node within a Tree. It is a small value
// type, safe to copy and compare; two Node values refer to the same node
// iff they compare equal with ==.
type Node struct {
	tree *Tree
	id   arena.Untyped
}

// IsZero reports whether n is the zero Node (no tree, no node).
func (n Node) IsZero() bool {
	return n.tree == nil
}

// ID returns n's opaque identity within its tree. Two nodes with the same
// ID, from the same Tree, are the same node; this is what the data model's
// "unique opaque identity" requirement maps onto. Equal does not consult
// it: Equal compares shape and only ever follows child links, never the
// parent link, which is what keeps its recursion cycle-free.
func (n Node) ID() uint32 {
	return uint32(n.id)
}

func (n Node) data() *nodeData {
	return n.tree.arena.At(n.id)
}

// Kind returns n's node kind.
func (n Node) Kind() Kind {
	return n.data().kind
}

// Value returns n's textual value, which may be empty.
func (n Node) Value() string {
	return n.data().value
}

// Position returns the line and column of the token that introduced n.
func (n Node) Position() (line, column int) {
	d := n.data()
	return d.line, d.column
}

// Children returns n's children, in source order.
func (n Node) Children() []Node {
	d := n.data()
	out := make([]Node, len(d.children))
	for i, id := range d.children {
		out[i] = Node{tree: n.tree, id: id}
	}
	return out
}

// Parent returns n's parent and true, or the zero Node and false if n is
// the root (or otherwise has no parent yet).
func (n Node) Parent() (Node, bool) {
	d := n.data()
	if d.parent.Nil() {
		return Node{}, false
	}
	return Node{tree: n.tree, id: d.parent}, true
}

// IsRoot reports whether n is a root node. Invariant: exactly the nodes
// with Kind() == Root satisfy this, and no non-root node does.
func (n Node) IsRoot() bool {
	return n.Kind() == Root
}

// String renders a compact, single-line debug form of n, e.g.
// `Field(int64)`. It does not recurse into children.
func (n Node) String() string {
	var b strings.Builder
	b.WriteString(n.Kind().String())
	b.WriteByte('(')
	b.WriteString(n.Value())
	b.WriteByte(')')
	return b.String()
}

// Dump renders n and its full subtree as an indented tree, useful for
// golden-file tests and debugging.
func (n Node) Dump() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n Node) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.String())
	b.WriteByte('\n')
	for _, c := range n.Children() {
		c.dump(b, depth+1)
	}
}
