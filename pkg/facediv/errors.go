package facediv

import "github.com/pkg/errors"

// Error taxonomy (§7 ERROR HANDLING DESIGN).
//
// Degenerate-geometry and unassignable-hole conditions are not represented
// as Go errors at all, nor reported to the caller in any other way: the
// algorithm proceeds (a degenerate loop is still emitted; an unassignable
// hole is silently dropped from its face). Only "graph invariant
// violation" is fatal for the face being processed, and only it gets a
// dedicated sentinel so a caller can tell "this face's geometry is broken"
// apart from an ordinary Go error.

// ErrGraphInvariant marks a fatal graph-invariant violation (§7): the
// planar-graph splitter (C5) reached a vertex with no outbound edge, or the
// hole merger (C6) hit its "all vertices shared but no edge" branch. The
// caller treats the face as unchanged (§7: "failure emits the base loop as
// a safe approximation").
var ErrGraphInvariant = errors.New("facediv: graph invariant violation")

// wrapInvariant attaches a stack trace to ErrGraphInvariant so a caller
// that logs the error can see exactly where the invariant broke.
func wrapInvariant(context string) error {
	return errors.WithStack(errors.Wrap(ErrGraphInvariant, context))
}
