// Package javadoc checks parsed Javadoc comments against the declarations
// they document.
//
// A Comment holds the tags a parser extracted from one doc comment. Check
// resolves the comment's references through a Resolver, reconciles @param,
// @throws and @return tags with the declaration, and reports every problem
// to a diag.Reporter. Check never fails; unresolvable parts of a comment are
// skipped after being reported.
package javadoc

import (
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/source"
)

// Node is implemented by every tag sub-node a Comment holds.
type Node interface {
	SourceSpan() source.Span
	node()
}

// Comment is one parsed doc comment. Tag slices keep source order.
//
// A Comment is built once by its parser and checked once. Checking only
// fills the resolved binding fields of its tags; afterwards it is read-only.
type Comment struct {
	Span source.Span

	Params     []*ParamTag     // @param name
	TypeParams []*TypeParamTag // @param <T>
	Throws     []*ThrownTag    // @throws, @exception
	Return     *ReturnTag      // @return
	Refs       []*CrossRef     // @see, {@link}, {@linkplain}, {@value}

	// Inherited is the range of documentation copied from a supertype when
	// this declaration inherits its documentation.
	Inherited *source.Span

	// InvalidParams are @param tags with unusable syntax. They are resolved
	// for position lookups but never checked for completeness.
	InvalidParams []*ParamTag
}

// ParamTag is a @param tag naming a formal parameter.
type ParamTag struct {
	Name string
	// Span covers the parameter name, TagSpan the "@param" tag name.
	Span    source.Span
	TagSpan source.Span

	Binding *binding.Variable
}

func (p *ParamTag) SourceSpan() source.Span { return p.Span }
func (*ParamTag) node()                     {}

// TypeParamTag is a @param tag naming a type parameter, written @param <T>.
type TypeParamTag struct {
	Name    string
	Span    source.Span
	TagSpan source.Span

	Binding *binding.Type
}

func (p *TypeParamTag) SourceSpan() source.Span { return p.Span }
func (*TypeParamTag) node()                     {}

// ThrownTag is a @throws or @exception tag.
type ThrownTag struct {
	Name string
	// Exception is set for tags written as @exception.
	Exception bool
	Span      source.Span
	TagSpan   source.Span

	Type *binding.Type
}

func (t *ThrownTag) SourceSpan() source.Span { return t.Span }
func (*ThrownTag) node()                     {}

type ReturnTag struct {
	Span source.Span
}

func (r *ReturnTag) SourceSpan() source.Span { return r.Span }
func (*ReturnTag) node()                     {}

// RefKind discriminates the CrossRef variants.
type RefKind uint8

const (
	RefType RefKind = iota
	RefField
	RefMethod
	RefConstructor
)

func (k RefKind) String() string {
	switch k {
	case RefType:
		return "type"
	case RefField:
		return "field"
	case RefMethod:
		return "method"
	case RefConstructor:
		return "constructor"
	}
	return "unknown"
}

// TagKind is the tag a cross-reference was written in.
type TagKind uint8

const (
	TagSee TagKind = iota
	TagLink
	TagLinkPlain
	// TagValue references must denote static fields.
	TagValue
)

func (k TagKind) String() string {
	switch k {
	case TagSee:
		return "see"
	case TagLink:
		return "link"
	case TagLinkPlain:
		return "linkplain"
	case TagValue:
		return "value"
	}
	return "unknown"
}

// CrossRef is a reference to another declaration: Receiver#Name for
// members, Receiver#Name(Args) for methods and constructors, Name for types.
type CrossRef struct {
	Kind RefKind
	Tag  TagKind
	Span source.Span

	// Receiver is the type written before '#', empty for the enclosing type.
	Receiver     string
	ReceiverSpan source.Span
	// Name is the member selector, or the type name of a RefType.
	Name     string
	NameSpan source.Span
	// Args is nil when no parameter list was written.
	Args []*Argument

	// Resolved by Check.
	ReceiverType *binding.Type
	Type         *binding.Type
	Field        *binding.Field
	Method       *binding.Method
	// SuperAccess is set when a field-style reference resolved to a method
	// whose receiver is a supertype of the enclosing type.
	SuperAccess bool
}

func (r *CrossRef) SourceSpan() source.Span { return r.Span }
func (*CrossRef) node()                     {}

// HasExplicitReceiver reports whether a receiver type was written.
func (r *CrossRef) HasExplicitReceiver() bool {
	return r.Receiver != ""
}

// Argument is one parameter type in a method or constructor reference.
type Argument struct {
	Type string
	// Name is the optional parameter name written after the type.
	Name string
	Span source.Span

	Resolved *binding.Type
}

func (a *Argument) SourceSpan() source.Span { return a.Span }
func (*Argument) node()                     {}
