package javadoc

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/source"
)

var log = commonlog.GetLogger("doccheck.javadoc")

type checker struct {
	comment *Comment
	scope   *Scope
	emit    diag.Emitter
	vis     string
}

// Check resolves and validates comment in scope, reporting problems to r.
// It is the single entry point of the package and is meant to be called
// once per documented declaration.
func Check(comment *Comment, scope *Scope, r diag.Reporter) {
	if comment == nil || scope == nil {
		return
	}
	if scope.Resolver == nil {
		scope.Resolver = nopResolver{}
	}
	c := &checker{
		comment: comment,
		scope:   scope,
		emit:    diag.Emitter{Reporter: r, Policy: scope.Options},
		vis:     scope.visibility(),
	}
	switch scope.Kind {
	case ClassScope:
		c.checkType()
	case MethodScope:
		c.checkMethod()
	}
}

func (c *checker) report(kind diag.Kind, span source.Span, args ...string) {
	c.emit.Emit(kind, span, c.vis, args...)
}

func (c *checker) unexpected(span source.Span) {
	c.report(diag.UnexpectedTag, span)
}

// checkType checks the comment of a type declaration. Types have no
// parameters, return value or exceptions; only type parameters are
// reconciled, and they are always required.
func (c *checker) checkType() {
	for _, p := range c.comment.Params {
		c.unexpected(p.TagSpan)
	}
	c.checkTypeParams(true)

	if c.comment.Return != nil {
		c.unexpected(c.comment.Return.Span)
	}
	for _, t := range c.comment.Throws {
		c.unexpected(t.TagSpan)
	}
	for _, ref := range c.comment.Refs {
		c.resolveReference(ref)
	}
}

func (c *checker) checkMethod() {
	decl := c.scope.Method
	overriding := decl != nil && decl.OverridesOrImplements()

	superRef := false
	for _, ref := range c.comment.Refs {
		c.resolveReference(ref)
		if decl != nil && (decl.IsConstructor() || overriding) && !superRef {
			superRef = isSuperReference(ref, decl)
		}
	}
	if !superRef && hasOverrideAnnotation(decl) {
		superRef = true
	}

	reportMissing := c.shouldReportMissing(overriding, superRef)
	if !overriding && c.comment.Inherited != nil {
		c.unexpected(*c.comment.Inherited)
	}

	c.checkParams(reportMissing)
	c.checkTypeParams(reportMissing)
	c.checkReturn(reportMissing)
	c.checkThrows(reportMissing)

	for _, p := range c.comment.InvalidParams {
		c.resolveParam(p, false)
	}
}

func (c *checker) checkReturn(reportMissing bool) {
	decl := c.scope.Method
	if c.comment.Return == nil {
		if reportMissing && decl != nil && !decl.IsConstructor() && !decl.ReturnsVoid() {
			c.report(diag.MissingReturnTag, decl.ReturnSpan)
		}
		return
	}
	if decl == nil || decl.IsConstructor() || decl.ReturnsVoid() {
		c.unexpected(c.comment.Return.Span)
	}
}

type nopResolver struct{}

func (nopResolver) ResolveType(*Scope, string) *binding.Type         { return nil }
func (nopResolver) ResolveVariable(*Scope, string) *binding.Variable { return nil }
func (nopResolver) FindField(*Scope, *binding.Type, string) *binding.Field {
	return nil
}
func (nopResolver) FindMethod(*Scope, *binding.Type, string, []*binding.Type) *binding.Method {
	return nil
}
func (nopResolver) FindConstructor(*Scope, *binding.Type, []*binding.Type) *binding.Method {
	return nil
}
