package javadoc

import (
	"strings"

	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java/binding"
)

// resolveReference resolves ref in the checker's scope and validates the
// rules that depend on what it resolved to.
func (c *checker) resolveReference(ref *CrossRef) {
	c.resolveTarget(ref)

	verifyValues := c.scope.Options.VerifyValues()
	if ref.Kind == RefField {
		switch {
		case ref.Method != nil:
			// #name without parentheses named a method.
			if ref.Tag == TagValue {
				c.report(diag.InvalidValueReference, ref.Span)
			} else if ref.ReceiverType.IsValid() {
				ref.SuperAccess = c.scope.Enclosing.IsCompatibleWith(ref.ReceiverType)
				ref.Method = c.findMethod(ref.ReceiverType, ref.Name, nil)
			}
		case verifyValues && ref.Field.IsValid():
			if ref.Tag == TagValue && !ref.Field.IsStatic() {
				c.report(diag.InvalidValueReference, ref.Span)
			}
		}
		return
	}

	if !verifyValues {
		return
	}
	if (ref.Kind == RefMethod || ref.Kind == RefConstructor) && ref.Tag == TagValue {
		c.report(diag.InvalidValueReference, ref.Span)
	}
	if referencedType(ref).IsTypeVariable() || (ref.Kind == RefMethod && ref.Type.IsTypeVariable()) {
		c.report(diag.InvalidReference, ref.Span)
	}
}

// referencedType is the type a reference names: the target of a type
// reference, or the explicit receiver of a member reference. A method
// reference is also invalid when its return type is a type variable.
func referencedType(ref *CrossRef) *binding.Type {
	if ref.Kind == RefType {
		return ref.Type
	}
	if ref.HasExplicitReceiver() {
		return ref.ReceiverType
	}
	return nil
}

func (c *checker) resolveTarget(ref *CrossRef) {
	if ref.Kind == RefType {
		ref.Type = c.resolveType(ref.Name)
		if !ref.Type.IsValid() {
			c.report(diag.UndefinedType, ref.Span, ref.Name)
		}
		return
	}

	recv := c.scope.Enclosing
	if ref.HasExplicitReceiver() {
		recv = c.resolveType(ref.Receiver)
		if !recv.IsValid() {
			ref.ReceiverType = recv
			c.report(diag.UndefinedType, ref.ReceiverSpan, ref.Receiver)
			return
		}
	}
	ref.ReceiverType = recv
	if !recv.IsValid() {
		return
	}

	switch ref.Kind {
	case RefField:
		f := c.scope.Resolver.FindField(c.scope, recv, ref.Name)
		if f.IsValid() {
			ref.Field = f
			ref.Type = f.Type
			return
		}
		if m := c.scope.Resolver.FindMethod(c.scope, recv, ref.Name, nil); m.IsValid() {
			ref.Method = m
			ref.Type = m.Return
			return
		}
		ref.Field = f
		c.report(diag.UndefinedField, ref.NameSpan, ref.Name)

	case RefMethod:
		args, ok := c.resolveArguments(ref)
		if !ok {
			return
		}
		ref.Method = c.findMethod(recv, ref.Name, args)
		if !ref.Method.IsValid() {
			c.report(diag.UndefinedMethod, ref.NameSpan, signature(ref.Name, ref.Args))
			return
		}
		ref.Type = ref.Method.Return

	case RefConstructor:
		ref.Type = recv
		args, ok := c.resolveArguments(ref)
		if !ok {
			return
		}
		ref.Method = c.scope.Resolver.FindConstructor(c.scope, recv, args)
		if !ref.Method.IsValid() {
			c.report(diag.UndefinedConstructor, ref.NameSpan, signature(recv.SimpleName(), ref.Args))
		}
	}
}

func (c *checker) findMethod(recv *binding.Type, selector string, args []*binding.Type) *binding.Method {
	return c.scope.Resolver.FindMethod(c.scope, recv, selector, args)
}

// resolveArguments resolves the argument types of a method or constructor
// reference. It reports the first unresolvable argument and returns false.
func (c *checker) resolveArguments(ref *CrossRef) ([]*binding.Type, bool) {
	if len(ref.Args) == 0 {
		return nil, true
	}
	types := make([]*binding.Type, len(ref.Args))
	for i, arg := range ref.Args {
		arg.Resolved = c.resolveType(arg.Type)
		if !arg.Resolved.IsValid() {
			c.report(diag.UndefinedType, arg.Span, arg.Type)
			return nil, false
		}
		types[i] = arg.Resolved
	}
	return types, true
}

func (c *checker) resolveType(name string) *binding.Type {
	return c.scope.Resolver.ResolveType(c.scope, name)
}

func signature(name string, args []*Argument) string {
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = a.Type
	}
	return name + "(" + strings.Join(types, ", ") + ")"
}
