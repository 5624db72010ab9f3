package binding

import "strings"

type TypeKind uint8

const (
	KindInvalid TypeKind = iota
	KindClass
	KindInterface
	KindEnum
	KindAnnotation
	KindRecord
	KindTypeVariable
	KindPrimitive
	KindArray
	KindVoid
)

func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	case KindRecord:
		return "record"
	case KindTypeVariable:
		return "type variable"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindVoid:
		return "void"
	}
	return "invalid"
}

const (
	objectName           = "java.lang.Object"
	runtimeExceptionName = "java.lang.RuntimeException"
	errorName            = "java.lang.Error"
)

// Type is a resolved type: a declared class or interface, a type variable,
// a primitive, an array or a parameterization of a generic type.
type Type struct {
	ID         ID
	Kind       TypeKind
	Name       string
	Superclass *Type
	Interfaces []*Type
	// Bounds are the declared bounds of a type variable.
	Bounds []*Type
	// Elem is the component type of an array.
	Elem *Type
	// Generic is the generic declaration a parameterized type instantiates.
	Generic   *Type
	Arguments []*Type
	// Local is set for classes declared inside a method body.
	Local      bool
	Enclosing  *Type
	Visibility Visibility
	Fields     []*Field
	Methods    []*Method
	Problem    Problem
}

func (t *Type) IsValid() bool {
	return t != nil && t.Problem == NoProblem && t.Kind != KindInvalid
}

// IsClass reports whether t is a valid class type (not an interface).
func (t *Type) IsClass() bool {
	if !t.IsValid() {
		return false
	}
	switch t.erasedKind() {
	case KindClass, KindEnum, KindRecord:
		return true
	}
	return false
}

func (t *Type) IsInterface() bool {
	if !t.IsValid() {
		return false
	}
	k := t.erasedKind()
	return k == KindInterface || k == KindAnnotation
}

func (t *Type) IsTypeVariable() bool {
	return t.IsValid() && t.Kind == KindTypeVariable
}

func (t *Type) IsPrimitive() bool {
	return t.IsValid() && t.Kind == KindPrimitive
}

func (t *Type) IsVoid() bool {
	return t != nil && t.Kind == KindVoid
}

func (t *Type) IsArray() bool {
	return t.IsValid() && t.Kind == KindArray
}

func (t *Type) erasedKind() TypeKind {
	if t.Generic != nil {
		return t.Generic.Kind
	}
	return t.Kind
}

// Same reports whether t and other are the same binding.
func (t *Type) Same(other *Type) bool {
	return t != nil && other != nil && t.ID != NoID && t.ID == other.ID
}

// Erasure strips type arguments and replaces type variables by their first
// bound.
func (t *Type) Erasure() *Type {
	if t == nil {
		return nil
	}
	switch {
	case t.Generic != nil:
		return t.Generic.Erasure()
	case t.Kind == KindTypeVariable:
		if len(t.Bounds) > 0 {
			return t.Bounds[0].Erasure()
		}
		if t.Superclass != nil {
			return t.Superclass
		}
	}
	return t
}

// IsSuperclassOf reports whether t is a proper superclass of other.
func (t *Type) IsSuperclassOf(other *Type) bool {
	if !t.IsValid() || !other.IsValid() {
		return false
	}
	target := t.Erasure()
	for s := other.Erasure().Superclass; s != nil; s = s.Superclass {
		if s.Erasure().Same(target) {
			return true
		}
	}
	return false
}

// Implements reports whether t implements or extends the interface iface,
// directly or through its supertypes.
func (t *Type) Implements(iface *Type) bool {
	if !t.IsValid() || !iface.IsValid() {
		return false
	}
	return implements(t.Erasure(), iface.Erasure(), map[ID]bool{})
}

func implements(t, iface *Type, seen map[ID]bool) bool {
	if t == nil || seen[t.ID] {
		return false
	}
	seen[t.ID] = true
	for _, i := range t.Interfaces {
		e := i.Erasure()
		if e.Same(iface) || implements(e, iface, seen) {
			return true
		}
	}
	return implements(t.Superclass, iface, seen)
}

// IsCompatibleWith reports whether a value of type t is assignable to a
// variable of type other.
func (t *Type) IsCompatibleWith(other *Type) bool {
	if !t.IsValid() || !other.IsValid() {
		return false
	}
	if t.Same(other) || t.Erasure().Same(other.Erasure()) {
		return true
	}
	if t.Kind == KindPrimitive || other.Kind == KindPrimitive || t.Kind == KindVoid || other.Kind == KindVoid {
		return false
	}
	if t.Kind == KindTypeVariable {
		for _, b := range t.Bounds {
			if b.IsCompatibleWith(other) {
				return true
			}
		}
	}
	if other.Erasure().Name == objectName {
		return true
	}
	if t.Kind == KindArray || other.Kind == KindArray {
		if t.Kind != KindArray || other.Kind != KindArray {
			return false
		}
		return t.Elem.IsCompatibleWith(other.Elem) && !t.Elem.IsPrimitive()
	}
	if other.IsInterface() {
		return t.Implements(other)
	}
	return other.IsSuperclassOf(t)
}

// IsUncheckedException reports whether t is java.lang.RuntimeException,
// java.lang.Error, or a subclass of either.
func (t *Type) IsUncheckedException() bool {
	if !t.IsValid() {
		return false
	}
	for s := t.Erasure(); s != nil; s = s.Superclass {
		if s.Name == runtimeExceptionName || s.Name == errorName {
			return true
		}
	}
	return false
}

// SimpleName is the last component of the qualified name.
func (t *Type) SimpleName() string {
	if t == nil {
		return ""
	}
	name := t.Name
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// FindField returns the field called name declared by t or inherited from
// its supertypes, or nil.
func (t *Type) FindField(name string) *Field {
	return findField(t.Erasure(), name, map[ID]bool{})
}

func findField(t *Type, name string, seen map[ID]bool) *Field {
	if t == nil || seen[t.ID] {
		return nil
	}
	seen[t.ID] = true
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	if f := findField(t.Superclass, name, seen); f != nil {
		return f
	}
	for _, i := range t.Interfaces {
		if f := findField(i.Erasure(), name, seen); f != nil {
			return f
		}
	}
	return nil
}

// MethodsNamed returns the methods called selector declared by t and its
// supertypes, nearest declaration first.
func (t *Type) MethodsNamed(selector string) []*Method {
	var out []*Method
	collectMethods(t.Erasure(), selector, map[ID]bool{}, &out)
	return out
}

func collectMethods(t *Type, selector string, seen map[ID]bool, out *[]*Method) {
	if t == nil || seen[t.ID] {
		return
	}
	seen[t.ID] = true
	for _, m := range t.Methods {
		if m.Selector == selector {
			*out = append(*out, m)
		}
	}
	if selector == ConstructorSelector {
		return
	}
	collectMethods(t.Superclass, selector, seen, out)
	for _, i := range t.Interfaces {
		collectMethods(i.Erasure(), selector, seen, out)
	}
}
