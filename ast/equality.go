package ast

import "strings"

// Equal reports whether a and b are structurally equal, per the data
// model's equality law:
//
//   - if exactly one of a, b is a root node, they are never equal.
//   - if both are root nodes, value is ignored and only children are
//     compared (in order).
//   - otherwise, they are equal iff their kinds match, their values match
//     case-insensitively, and their children are equal in order.
//
// Equal works across two different Trees (even two different parses of
// the same source): it compares node shape, not arena identity.
func Equal(a, b Node) bool {
	aRoot, bRoot := a.IsRoot(), b.IsRoot()
	if aRoot != bRoot {
		return false
	}
	if !aRoot && a.Kind() != b.Kind() {
		return false
	}
	if !aRoot && !strings.EqualFold(a.Value(), b.Value()) {
		return false
	}

	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}
