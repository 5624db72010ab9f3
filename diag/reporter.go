package diag

import "github.com/dhamidi/doccheck/source"

// Reporter receives problems. Implementations must not retain args beyond
// the call unless they copy it.
type Reporter interface {
	Report(p Problem)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(p Problem)

func (f ReporterFunc) Report(p Problem) { f(p) }

// Nop discards every problem.
var Nop Reporter = ReporterFunc(func(Problem) {})

// Tee forwards every problem to all reporters in order.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(p Problem) {
		for _, r := range reporters {
			if r != nil {
				r.Report(p)
			}
		}
	})
}

// Policy decides the severity of a problem of kind raised on a declaration
// of the given visibility. Returning SevIgnore drops the problem.
type Policy interface {
	SeverityOf(kind Kind, visibility string) Severity
}

// Emitter builds problems and hands them to a Reporter, applying a Policy.
type Emitter struct {
	Reporter Reporter
	Policy   Policy
}

// Emit reports a problem of kind at span. visibility is the visibility of the
// declaration the comment belongs to ("" when unknown).
func (e Emitter) Emit(kind Kind, span source.Span, visibility string, args ...string) {
	if e.Reporter == nil {
		return
	}
	sev := SevWarning
	if e.Policy != nil {
		sev = e.Policy.SeverityOf(kind, visibility)
	}
	if sev == SevIgnore {
		return
	}
	e.Reporter.Report(Problem{
		Kind:     kind,
		Severity: sev,
		Span:     span,
		Args:     args,
		Message:  Message(kind, args...),
	})
}
