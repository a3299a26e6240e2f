package ast

import (
	"testing"

	"github.com/draylundy/ProtobufGenerator/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// shape is a cmp-friendly, tree-shaped projection of a Node, used only by
// tests: when an Equal assertion fails, cmp.Diff on two shapes pinpoints
// exactly which kind/value/position in the tree diverged, which a bare
// "not equal" from Equal itself can't.
type shape struct {
	Kind     string
	Value    string
	Children []shape
}

func shapeOf(n Node) shape {
	kids := make([]shape, 0, len(n.Children()))
	for _, c := range n.Children() {
		kids = append(kids, shapeOf(c))
	}
	return shape{Kind: n.Kind().String(), Value: n.Value(), Children: kids}
}

func TestEqualCaseInsensitiveValue(t *testing.T) {
	tr1 := NewTree()
	a := tr1.NewNode(Identifier, "Foo", token.Token{})
	tr1.AddChild(tr1.Root(), a)

	tr2 := NewTree()
	b := tr2.NewNode(Identifier, "foo", token.Token{})
	tr2.AddChild(tr2.Root(), b)

	if !Equal(a, b) {
		t.Fatalf("expected case-insensitive match:\n%s", cmp.Diff(shapeOf(a), shapeOf(b)))
	}
}

func TestEqualitySymmetryAndTransitivity(t *testing.T) {
	mk := func(v string) Node {
		tr := NewTree()
		n := tr.NewNode(Identifier, v, token.Token{})
		tr.AddChild(tr.Root(), n)
		return n
	}
	a, b, c := mk("Foo"), mk("foo"), mk("FOO")

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a), "equality must be symmetric")
	assert.True(t, Equal(b, c))
	assert.True(t, Equal(a, c), "equality must be transitive")
}

func TestRootEqualityIgnoresValueOnlyComparesChildren(t *testing.T) {
	tr1 := NewTree()
	tr2 := NewTree()
	// Two empty roots are equal regardless of internal bookkeeping.
	assert.True(t, Equal(tr1.Root(), tr2.Root()))

	child := tr1.NewNode(Package, "package", token.Token{})
	tr1.AddChild(tr1.Root(), child)
	assert.False(t, Equal(tr1.Root(), tr2.Root()), "roots with different children must differ")
}

func TestRootNeverEqualsNonRoot(t *testing.T) {
	tr := NewTree()
	root := tr.Root()
	child := tr.NewNode(Package, "package", token.Token{})
	tr.AddChild(root, child)

	assert.False(t, Equal(root, child))
	assert.False(t, Equal(child, root))
}

func TestEqualDiffersOnMismatchedChildOrder(t *testing.T) {
	mkPair := func(first, second string) Node {
		tr := NewTree()
		root := tr.Root()
		a := tr.NewNode(Identifier, first, token.Token{})
		b := tr.NewNode(Identifier, second, token.Token{})
		tr.AddChild(root, a)
		tr.AddChild(root, b)
		return root
	}

	x := mkPair("a", "b")
	y := mkPair("b", "a")
	if Equal(x, y) {
		t.Fatalf("expected order-sensitive mismatch:\n%s", cmp.Diff(shapeOf(x), shapeOf(y)))
	}
}
