// Package reporter accumulates parse diagnostics without ever aborting a
// parse. It plays the role the teacher's reporter.Handler plays, narrowed
// to this front end's simpler position model: an ast.ParseError already
// carries its own position (via the offending token), so there is no
// separate SourcePos type to thread through.
package reporter

import "github.com/draylundy/ProtobufGenerator/ast"

// Handler collects ParseErrors as a parse proceeds. It is not safe for
// concurrent use by multiple goroutines sharing one parse; per the
// concurrency model, a single parse is single-threaded end to end.
type Handler struct {
	errs []ast.ParseError
}

// NewHandler returns a ready-to-use, empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Report records err and returns it unchanged, so call sites can both
// record and propagate an error in one expression.
func (h *Handler) Report(err ast.ParseError) ast.ParseError {
	h.errs = append(h.errs, err)
	return err
}

// Errors returns every error reported so far, in discovery order.
func (h *Handler) Errors() []ast.ParseError {
	return h.errs
}

// HasErrors reports whether any error has been reported yet.
func (h *Handler) HasErrors() bool {
	return len(h.errs) > 0
}
