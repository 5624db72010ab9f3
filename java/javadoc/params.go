package javadoc

import (
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java/binding"
)

// checkParams reconciles @param tags with the method's formal parameters.
// Duplicates are detected by binding identity.
func (c *checker) checkParams(reportMissing bool) {
	decl := c.scope.Method
	tags := c.comment.Params

	// Field initializers have no parameters to document.
	if decl == nil {
		for _, p := range tags {
			c.unexpected(p.TagSpan)
		}
		return
	}

	if len(tags) == 0 {
		if reportMissing {
			for _, arg := range decl.Params {
				c.report(diag.MissingParamTag, arg.Span, arg.Name)
			}
		}
		return
	}

	var accepted []*binding.Variable
	for _, p := range tags {
		c.resolveParam(p, true)
		if !p.Binding.IsValid() {
			continue
		}
		duplicate := false
		for _, b := range accepted {
			if b.Same(p.Binding) {
				c.report(diag.DuplicatedParamTag, p.Span, p.Name)
				duplicate = true
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, p.Binding)
		}
	}

	if !reportMissing {
		return
	}
	for _, arg := range decl.Params {
		found := false
		for _, b := range accepted {
			if b.Same(arg.Binding) {
				found = true
				break
			}
		}
		if !found {
			c.report(diag.MissingParamTag, arg.Span, arg.Name)
		}
	}
}

// resolveParam binds p to a formal parameter. With warn set, a name that is
// not a parameter is reported.
func (c *checker) resolveParam(p *ParamTag, warn bool) {
	p.Binding = c.scope.Resolver.ResolveVariable(c.scope, p.Name)
	if !p.Binding.IsValid() && warn {
		c.report(diag.UndeclaredParamTagName, p.Span, p.Name)
	}
}

// checkTypeParams reconciles @param <T> tags with the type parameters of the
// documented type or method.
func (c *checker) checkTypeParams(reportMissing bool) {
	tags := c.comment.TypeParams

	var params []TypeParam
	var typeVars []*binding.Type
	switch c.scope.Kind {
	case MethodScope:
		decl := c.scope.Method
		if decl == nil {
			for _, p := range tags {
				c.unexpected(p.TagSpan)
			}
			return
		}
		params = decl.TypeParams
		typeVars = decl.TypeVariables()
	case ClassScope:
		if c.scope.Type != nil {
			params = c.scope.Type.TypeParams
			typeVars = c.scope.Type.TypeVariables()
		}
	}

	if len(typeVars) == 0 {
		for _, p := range tags {
			c.unexpected(p.TagSpan)
		}
		return
	}

	if len(tags) == 0 {
		if reportMissing {
			for _, p := range params {
				c.report(diag.MissingParamTag, p.Span, p.Name)
			}
		}
		return
	}

	// Bindings and declaration disagree; nothing reliable to compare.
	if len(typeVars) != len(params) {
		return
	}

	bindings := make([]*binding.Type, len(tags))
	for i, p := range tags {
		p.Binding = c.resolveType(p.Name)
		if !p.Binding.IsValid() {
			continue
		}
		if !p.Binding.IsTypeVariable() {
			c.report(diag.UndeclaredParamTagName, p.Span, p.Name)
			continue
		}
		duplicate := false
		for j := 0; j < i; j++ {
			if bindings[j].Same(p.Binding) {
				c.report(diag.DuplicatedParamTag, p.Span, p.Name)
				duplicate = true
				break
			}
		}
		if !duplicate {
			bindings[i] = p.Binding
		}
	}

	for _, param := range params {
		found := false
		for j := range bindings {
			if bindings[j] != nil && param.Binding.Same(bindings[j]) {
				found = true
				bindings[j] = nil
				break
			}
		}
		if !found && reportMissing {
			c.report(diag.MissingParamTag, param.Span, param.Name)
		}
	}

	// Whatever is left names a type variable that is not declared here,
	// e.g. the enclosing class's T documented on a method.
	for i, b := range bindings {
		if b != nil {
			c.report(diag.UndeclaredParamTagName, tags[i].Span, tags[i].Name)
		}
	}
}
