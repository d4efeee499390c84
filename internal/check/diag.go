package check

import (
	"golang.org/x/xerrors"

	"github.com/max1624/jakt/internal/token"
)

// Diagnostic is a single semantic-analysis error: a rendered message plus
// the span it applies to. The checker never aborts on one; it threads the
// first Diagnostic it encounters back to the caller while continuing to
// build a best-effort checked Project.
type Diagnostic struct {
	Message string
	Span    token.Span
}

func (d *Diagnostic) Error() string {
	return xerrors.Errorf("%s (at %s)", d.Message, d.Span).Error()
}

// newDiag builds a Diagnostic the way the rest of this package's callers
// expect: a plain formatted message, no wrapped cause (there is nothing
// upstream to wrap — these are leaf checks over already-parsed syntax).
func newDiag(span token.Span, format string, args ...any) error {
	return &Diagnostic{Message: xerrors.Errorf(format, args...).Error(), Span: span}
}

// firstError keeps the first non-nil error seen across a sequence of
// fallible steps: local checks accumulate the first error while
// continuing.
func firstError(first, next error) error {
	if first != nil {
		return first
	}
	return next
}
