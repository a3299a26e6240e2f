// Package slicesx contains small extensions to Go's package slices, in the
// spirit of (and grounded on) the teacher's internal/ext/slicesx: a couple
// of bounds-checked accessors that show up repeatedly in hand-rolled
// stack/queue code.
package slicesx

import "golang.org/x/exp/slices"

// Get performs a bounds check and returns the value at idx.
//
// If the bounds check fails, returns the zero value and false.
func Get[S ~[]E, E any](s S, idx int) (element E, ok bool) {
	if idx < 0 || idx >= len(s) {
		return element, false
	}
	return s[idx], true
}

// Last returns the last element of s, unless it is empty, in which case it
// returns the zero value and false.
func Last[S ~[]E, E any](s S) (element E, ok bool) {
	return Get(s, len(s)-1)
}

// Among is like [slices.Contains], but the haystack is passed variadically,
// which makes the common (x == y || x == z || ...) case read more plainly.
func Among[E comparable](needle E, haystack ...E) bool {
	return slices.Contains(haystack, needle)
}
