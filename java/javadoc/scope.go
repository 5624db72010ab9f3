package javadoc

import (
	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/source"
)

// ScopeKind says whether a comment documents a type or a member.
type ScopeKind uint8

const (
	ClassScope ScopeKind = iota
	MethodScope
)

func (k ScopeKind) String() string {
	if k == ClassScope {
		return "class"
	}
	return "method"
}

// Resolver is the binding resolver. Every lookup returns nil, or a binding
// whose IsValid is false, when the name cannot be resolved.
type Resolver interface {
	ResolveType(scope *Scope, name string) *binding.Type
	// ResolveVariable resolves a name to a formal parameter of the scope's
	// method.
	ResolveVariable(scope *Scope, name string) *binding.Variable
	FindField(scope *Scope, receiver *binding.Type, name string) *binding.Field
	// FindMethod looks up a method by selector and argument types. A nil
	// args slice looks up a method with no parameters.
	FindMethod(scope *Scope, receiver *binding.Type, selector string, args []*binding.Type) *binding.Method
	FindConstructor(scope *Scope, receiver *binding.Type, args []*binding.Type) *binding.Method
}

// Scope is the declaration context a comment is checked in.
//
// A method scope with a nil Method is a field initializer: it has no
// parameters, exceptions or return type to document.
type Scope struct {
	Kind ScopeKind
	// Enclosing is the source type the comment appears in.
	Enclosing *binding.Type
	Type      *TypeDecl
	Method    *MethodDecl
	Resolver  Resolver
	Options   config.Options
}

func NewClassScope(decl *TypeDecl, r Resolver, opts config.Options) *Scope {
	var enclosing *binding.Type
	if decl != nil {
		enclosing = decl.Binding
	}
	return &Scope{Kind: ClassScope, Enclosing: enclosing, Type: decl, Resolver: r, Options: opts}
}

func NewMethodScope(enclosing *binding.Type, decl *MethodDecl, r Resolver, opts config.Options) *Scope {
	if enclosing == nil && decl != nil && decl.Binding != nil {
		enclosing = decl.Binding.Declaring
	}
	return &Scope{Kind: MethodScope, Enclosing: enclosing, Method: decl, Resolver: r, Options: opts}
}

// visibility returns the visibility of the documented declaration.
func (s *Scope) visibility() string {
	switch {
	case s.Kind == MethodScope && s.Method != nil && s.Method.Binding != nil:
		return string(s.Method.Binding.Visibility)
	case s.Kind == ClassScope && s.Type != nil && s.Type.Binding != nil:
		return string(s.Type.Binding.Visibility)
	}
	return ""
}

// Param is a declared formal parameter.
type Param struct {
	Name    string
	Span    source.Span
	Binding *binding.Variable
}

// TypeParam is a declared type parameter.
type TypeParam struct {
	Name    string
	Span    source.Span
	Binding *binding.Type
}

// Thrown is one entry of a throws clause.
type Thrown struct {
	Name string
	Span source.Span
	Type *binding.Type
}

type TypeDecl struct {
	Binding    *binding.Type
	TypeParams []TypeParam
}

// TypeVariables returns the resolved type parameter bindings.
func (d *TypeDecl) TypeVariables() []*binding.Type {
	return typeVariables(d.TypeParams)
}

// MethodDecl is a method or constructor declaration.
type MethodDecl struct {
	Binding    *binding.Method
	Params     []Param
	TypeParams []TypeParam
	Thrown     []Thrown
	ReturnSpan source.Span
}

func (d *MethodDecl) FormalParameters() []Param {
	return d.Params
}

func (d *MethodDecl) TypeParameters() []TypeParam {
	return d.TypeParams
}

// TypeVariables returns the resolved type parameter bindings, preferring the
// method binding's own list.
func (d *MethodDecl) TypeVariables() []*binding.Type {
	if d.Binding != nil && d.Binding.TypeVariables != nil {
		return d.Binding.TypeVariables
	}
	return typeVariables(d.TypeParams)
}

// DeclaredThrownTypes returns the resolved types of the throws clause, in
// declaration order. Unresolvable entries are included as invalid bindings.
func (d *MethodDecl) DeclaredThrownTypes() []*binding.Type {
	out := make([]*binding.Type, len(d.Thrown))
	for i, t := range d.Thrown {
		out[i] = t.Type
	}
	return out
}

func (d *MethodDecl) IsConstructor() bool {
	return d.Binding.IsConstructor()
}

// OverridesOrImplements reports whether the method is an instance method
// flagged as overriding or implementing a supertype method.
func (d *MethodDecl) OverridesOrImplements() bool {
	return d.Binding != nil && !d.Binding.Static && d.Binding.Overrides()
}

// OwningClassIsLocal reports whether the declaring class is declared inside
// a method body.
func (d *MethodDecl) OwningClassIsLocal() bool {
	return d.Binding != nil && d.Binding.Declaring != nil && d.Binding.Declaring.Local
}

func (d *MethodDecl) ReturnsVoid() bool {
	return d.Binding == nil || d.Binding.Return == nil || d.Binding.Return.IsVoid()
}

func typeVariables(params []TypeParam) []*binding.Type {
	var out []*binding.Type
	for _, p := range params {
		if p.Binding.IsTypeVariable() {
			out = append(out, p.Binding)
		}
	}
	return out
}
