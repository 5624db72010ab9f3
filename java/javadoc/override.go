package javadoc

import (
	"errors"

	"github.com/dhamidi/doccheck/java/binding"
)

var errIncompleteBinding = errors.New("incomplete binding")

// ShouldReportMissing reports whether missing @param, @throws and @return
// tags are reported for the declaration of scope. comment's references must
// already be resolved (see Check).
func ShouldReportMissing(comment *Comment, scope *Scope) bool {
	if comment == nil || scope == nil || scope.Kind == ClassScope {
		return true
	}
	decl := scope.Method
	overriding := decl != nil && decl.OverridesOrImplements()
	superRef := false
	if decl != nil && (decl.IsConstructor() || overriding) {
		for _, ref := range comment.Refs {
			if isSuperReference(ref, decl) {
				superRef = true
				break
			}
		}
	}
	if !superRef && hasOverrideAnnotation(decl) {
		superRef = true
	}
	c := &checker{comment: comment, scope: scope}
	return c.shouldReportMissing(overriding, superRef)
}

func (c *checker) shouldReportMissing(overriding, superRef bool) bool {
	decl := c.scope.Method
	switch {
	case overriding && c.comment.Inherited != nil:
		log.Debug("missing tags suppressed: documentation inherited by overriding method")
		return false
	case superRef:
		log.Debug("missing tags suppressed: comment references the overridden member")
		return false
	case decl == nil:
		return false
	case decl.IsConstructor() && !c.scope.Options.ConstructorTags:
		return false
	case decl.OwningClassIsLocal():
		log.Debug("missing tags suppressed: member of a local type")
		return false
	}
	return true
}

func hasOverrideAnnotation(decl *MethodDecl) bool {
	return decl != nil && decl.Binding != nil && decl.Binding.OverrideAnnotation
}

// isSuperReference reports whether ref names the supertype member that decl
// overrides, or the superclass constructor decl delegates to. A reference
// that cannot be classified is not a super reference.
func isSuperReference(ref *CrossRef, decl *MethodDecl) bool {
	ok, err := superReference(ref, decl)
	if err != nil {
		log.Debugf("super reference check skipped for %s: %s", ref.Name, err)
		return false
	}
	return ok
}

func superReference(ref *CrossRef, decl *MethodDecl) (bool, error) {
	m := decl.Binding
	if m == nil {
		return false, errIncompleteBinding
	}
	switch ref.Kind {
	case RefMethod:
		if !ref.Method.IsValid() || !ref.ReceiverType.IsValid() {
			return false, nil
		}
		if m.Declaring == nil || m.Return == nil || ref.Method.Return == nil {
			return false, errIncompleteBinding
		}
		recv := ref.ReceiverType
		if !recv.IsSuperclassOf(m.Declaring) && !(recv.IsInterface() && m.Declaring.Implements(recv)) {
			return false, nil
		}
		if ref.Method.Selector != m.Selector || !m.Return.IsCompatibleWith(ref.Method.Return) {
			return false, nil
		}
		return sameArguments(ref, decl, func() (bool, error) {
			if err := requireParams(m.Params, ref.Method.Params); err != nil {
				return false, err
			}
			return m.ParameterErasuresEqual(ref.Method), nil
		})

	case RefConstructor:
		if !ref.Method.IsValid() {
			return false, nil
		}
		if m.Declaring == nil {
			return false, errIncompleteBinding
		}
		if !m.Declaring.IsCompatibleWith(ref.Type) {
			return false, nil
		}
		return sameArguments(ref, decl, func() (bool, error) {
			if err := requireParams(m.Params, ref.Method.Params); err != nil {
				return false, err
			}
			return m.ParametersCompatibleWith(ref.Method.Params), nil
		})
	}
	return false, nil
}

// sameArguments matches a reference with no arguments against a method
// without parameters; when both have some, compare decides.
func sameArguments(ref *CrossRef, decl *MethodDecl, compare func() (bool, error)) (bool, error) {
	refArgs, declArgs := len(ref.Args), len(decl.Params)
	switch {
	case refArgs == 0 && declArgs == 0:
		return true, nil
	case refArgs != 0 && declArgs != 0:
		return compare()
	}
	return false, nil
}

func requireParams(lists ...[]*binding.Type) error {
	for _, params := range lists {
		for _, p := range params {
			if p == nil {
				return errIncompleteBinding
			}
		}
	}
	return nil
}
