package javadoc

import (
	"github.com/dhamidi/doccheck/diag"
)

// checkThrows reconciles @throws tags with the method's throws clause.
//
// A declared exception is matched by a tag resolving to its erasure; each
// tag matches at most one declared exception. Remaining tags must name a
// subclass of a declared exception or an unchecked exception.
func (c *checker) checkThrows(reportMissing bool) {
	decl := c.scope.Method
	tags := c.comment.Throws

	if decl == nil {
		for _, t := range tags {
			c.unexpected(t.TagSpan)
		}
		return
	}

	if len(tags) == 0 {
		if reportMissing {
			for _, thrown := range decl.Thrown {
				if thrown.Type.IsValid() {
					c.report(diag.MissingThrowsTag, thrown.Span, thrown.Type.Name)
				}
			}
		}
		return
	}

	// Only class types take part in matching; everything else was resolved
	// for position lookups only.
	var kept []*ThrownTag
	for _, t := range tags {
		t.Type = c.resolveType(t.Name)
		if !t.Type.IsValid() {
			c.report(diag.UndefinedType, t.Span, t.Name)
			continue
		}
		if t.Type.IsClass() {
			kept = append(kept, t)
		}
	}

	for _, thrown := range decl.Thrown {
		erased := thrown.Type.Erasure()
		found := false
		for j, t := range kept {
			if t != nil && erased.Same(t.Type) {
				found = true
				kept[j] = nil
				break
			}
		}
		if !found && reportMissing && erased.IsValid() {
			c.report(diag.MissingThrowsTag, thrown.Span, erased.Name)
		}
	}

	for _, t := range kept {
		if t == nil {
			continue
		}
		compatible := false
		for _, thrown := range decl.Thrown {
			if thrown.Type != nil && t.Type.IsCompatibleWith(thrown.Type) {
				compatible = true
				break
			}
		}
		if !compatible && !t.Type.IsUncheckedException() {
			c.report(diag.InvalidThrowsClassName, t.Span, t.Name)
		}
	}
}
