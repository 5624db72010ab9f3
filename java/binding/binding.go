// Package binding holds the resolved symbols a doc comment refers to: types,
// fields, methods and formal parameters.
//
// Bindings are shared, table-owned entities. Two bindings denote the same
// symbol exactly when their IDs are equal; names are never compared for
// identity.
package binding

import "strings"

// ID is a per-table identity key. NoID is never assigned by a Table.
type ID uint32

const NoID ID = 0

// Problem is the reason a binding could not be resolved. A binding is valid
// iff its problem is NoProblem.
type Problem uint8

const (
	NoProblem Problem = iota
	NotFound
	Ambiguous
	NotVisible
)

func (p Problem) String() string {
	switch p {
	case NoProblem:
		return "ok"
	case NotFound:
		return "not found"
	case Ambiguous:
		return "ambiguous"
	case NotVisible:
		return "not visible"
	}
	return "unknown"
}

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

// Variable is a formal parameter of a method.
type Variable struct {
	ID      ID
	Name    string
	Type    *Type
	Problem Problem
}

func (v *Variable) IsValid() bool {
	return v != nil && v.Problem == NoProblem
}

// Same reports whether v and other denote the same parameter.
func (v *Variable) Same(other *Variable) bool {
	return v != nil && other != nil && v.ID != NoID && v.ID == other.ID
}

type Field struct {
	ID         ID
	Name       string
	Type       *Type
	Declaring  *Type
	Static     bool
	Visibility Visibility
	Problem    Problem
}

func (f *Field) IsValid() bool {
	return f != nil && f.Problem == NoProblem
}

func (f *Field) Same(other *Field) bool {
	return f != nil && other != nil && f.ID != NoID && f.ID == other.ID
}

func (f *Field) IsStatic() bool {
	return f != nil && f.Static
}

// ConstructorSelector is the selector of every constructor binding.
const ConstructorSelector = "<init>"

type Method struct {
	ID            ID
	Selector      string
	Declaring     *Type
	Return        *Type
	Params        []*Type
	Thrown        []*Type
	TypeVariables []*Type
	Static        bool
	// Overriding and Implementing are the precomputed modifier flags set
	// when the method overrides a superclass method or implements an
	// interface method.
	Overriding   bool
	Implementing bool
	// OverrideAnnotation is set when the declaration carries @Override.
	OverrideAnnotation bool
	Visibility         Visibility
	Problem            Problem
}

func (m *Method) IsValid() bool {
	return m != nil && m.Problem == NoProblem
}

func (m *Method) Same(other *Method) bool {
	return m != nil && other != nil && m.ID != NoID && m.ID == other.ID
}

func (m *Method) IsConstructor() bool {
	return m != nil && m.Selector == ConstructorSelector
}

// Overrides reports whether the overriding or implementing flag is set.
func (m *Method) Overrides() bool {
	return m != nil && (m.Overriding || m.Implementing)
}

// ParameterErasuresEqual reports whether both methods take the same number
// of parameters and the parameters have identical erasures.
func (m *Method) ParameterErasuresEqual(other *Method) bool {
	if m == nil || other == nil || len(m.Params) != len(other.Params) {
		return false
	}
	for i := range m.Params {
		if !m.Params[i].Erasure().Same(other.Params[i].Erasure()) {
			return false
		}
	}
	return true
}

// ParametersCompatibleWith reports whether each argument type can be passed
// for the corresponding parameter of m.
func (m *Method) ParametersCompatibleWith(args []*Type) bool {
	if m == nil || len(m.Params) != len(args) {
		return false
	}
	for i, p := range m.Params {
		if args[i].Same(p) {
			continue
		}
		if !args[i].IsCompatibleWith(p) {
			return false
		}
	}
	return true
}

func (m *Method) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if m.IsConstructor() && m.Declaring != nil {
		sb.WriteString(m.Declaring.SimpleName())
	} else {
		sb.WriteString(m.Selector)
	}
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
