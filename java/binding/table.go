package binding

import (
	"sort"
	"strings"
)

// Table is the symbol table of one compilation. It interns declared types by
// qualified name and hands out identity keys.
//
// A Table is not safe for concurrent mutation. Build it completely, then
// share it read-only.
type Table struct {
	next  ID
	types map[string]*Type

	Object           *Type
	String           *Type
	Throwable        *Type
	Exception        *Type
	RuntimeException *Type
	Error            *Type
	Void             *Type
}

var primitiveNames = []string{"boolean", "byte", "char", "short", "int", "long", "float", "double"}

func NewTable() *Table {
	t := &Table{types: make(map[string]*Type)}

	t.Object = t.Declare(objectName, KindClass)
	t.Object.Visibility = VisibilityPublic
	t.String = t.Class("java.lang.String", nil)
	t.Throwable = t.Class("java.lang.Throwable", nil)
	t.Exception = t.Class("java.lang.Exception", t.Throwable)
	t.RuntimeException = t.Class(runtimeExceptionName, t.Exception)
	t.Error = t.Class(errorName, t.Throwable)

	t.Void = t.intern("void", KindVoid)
	for _, name := range primitiveNames {
		t.intern(name, KindPrimitive)
	}
	return t
}

func (t *Table) nextID() ID {
	t.next++
	return t.next
}

func (t *Table) intern(name string, kind TypeKind) *Type {
	if typ, ok := t.types[name]; ok {
		return typ
	}
	typ := &Type{ID: t.nextID(), Kind: kind, Name: name, Visibility: VisibilityPublic}
	t.types[name] = typ
	return typ
}

// Lookup returns the declared type with the qualified name, or nil.
func (t *Table) Lookup(name string) *Type {
	return t.types[name]
}

// LookupSimple returns every declared class or interface whose simple name
// is name, ordered by qualified name.
func (t *Table) LookupSimple(name string) []*Type {
	var out []*Type
	for _, typ := range t.types {
		if typ.Kind == KindPrimitive || typ.Kind == KindVoid || typ.Kind == KindArray || typ.Generic != nil {
			continue
		}
		if typ.SimpleName() == name {
			out = append(out, typ)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Types returns every interned type ordered by qualified name.
func (t *Table) Types() []*Type {
	out := make([]*Type, 0, len(t.types))
	for _, typ := range t.types {
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Primitive returns the primitive type called name, or nil.
func (t *Table) Primitive(name string) *Type {
	typ := t.types[name]
	if typ == nil || typ.Kind != KindPrimitive {
		return nil
	}
	return typ
}

// Declare interns a declared type. Declaring an existing name returns the
// existing type; a type first seen as an invalid forward reference takes the
// new kind.
func (t *Table) Declare(name string, kind TypeKind) *Type {
	typ := t.intern(name, kind)
	if typ.Kind == KindInvalid {
		typ.Kind = kind
		typ.Problem = NoProblem
	}
	return typ
}

// Class declares a class. A nil superclass means java.lang.Object.
func (t *Table) Class(name string, super *Type, interfaces ...*Type) *Type {
	typ := t.Declare(name, KindClass)
	if super == nil && typ != t.Object {
		super = t.Object
	}
	typ.Superclass = super
	typ.Interfaces = append(typ.Interfaces, interfaces...)
	return typ
}

// Interface declares an interface extending supers.
func (t *Table) Interface(name string, supers ...*Type) *Type {
	typ := t.Declare(name, KindInterface)
	typ.Superclass = t.Object
	typ.Interfaces = append(typ.Interfaces, supers...)
	return typ
}

// TypeVariable creates a fresh type variable. Type variables are never
// interned by name: two declarations of T are distinct bindings.
func (t *Table) TypeVariable(name string, bounds ...*Type) *Type {
	return &Type{
		ID:         t.nextID(),
		Kind:       KindTypeVariable,
		Name:       name,
		Superclass: t.Object,
		Bounds:     bounds,
	}
}

// ArrayOf returns the interned array type with the given component type.
func (t *Table) ArrayOf(elem *Type) *Type {
	name := elem.Name + "[]"
	if typ, ok := t.types[name]; ok {
		return typ
	}
	typ := t.intern(name, KindArray)
	typ.Elem = elem
	typ.Superclass = t.Object
	if !elem.IsValid() {
		typ.Problem = elem.Problem
	}
	return typ
}

// Parameterize returns the interned parameterization generic<args...>.
func (t *Table) Parameterize(generic *Type, args ...*Type) *Type {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.String()
	}
	name := generic.Name + "<" + strings.Join(names, ",") + ">"
	if typ, ok := t.types[name]; ok {
		return typ
	}
	typ := t.intern(name, generic.Kind)
	typ.Generic = generic
	typ.Arguments = args
	typ.Superclass = generic.Superclass
	typ.Interfaces = generic.Interfaces
	typ.Visibility = generic.Visibility
	return typ
}

// Missing returns a problem type for an unresolvable name. Missing types get
// fresh IDs and are not interned, so they never compare equal to anything.
func (t *Table) Missing(name string, problem Problem) *Type {
	if problem == NoProblem {
		problem = NotFound
	}
	return &Type{ID: t.nextID(), Kind: KindInvalid, Name: name, Problem: problem}
}

// Variable creates a formal parameter binding.
func (t *Table) Variable(name string, typ *Type) *Variable {
	return &Variable{ID: t.nextID(), Name: name, Type: typ}
}

// Field declares a field on decl.
func (t *Table) Field(decl *Type, name string, typ *Type, static bool) *Field {
	f := &Field{
		ID:         t.nextID(),
		Name:       name,
		Type:       typ,
		Declaring:  decl,
		Static:     static,
		Visibility: VisibilityPublic,
	}
	decl.Fields = append(decl.Fields, f)
	return f
}

// Method declares a method on decl.
func (t *Table) Method(decl *Type, selector string, ret *Type, params ...*Type) *Method {
	if ret == nil {
		ret = t.Void
	}
	m := &Method{
		ID:         t.nextID(),
		Selector:   selector,
		Declaring:  decl,
		Return:     ret,
		Params:     params,
		Visibility: VisibilityPublic,
	}
	decl.Methods = append(decl.Methods, m)
	return m
}

// Constructor declares a constructor on decl.
func (t *Table) Constructor(decl *Type, params ...*Type) *Method {
	return t.Method(decl, ConstructorSelector, t.Void, params...)
}

// MissingMethod returns a problem method binding.
func (t *Table) MissingMethod(receiver *Type, selector string, problem Problem) *Method {
	if problem == NoProblem {
		problem = NotFound
	}
	return &Method{ID: t.nextID(), Selector: selector, Declaring: receiver, Return: t.Void, Problem: problem}
}

// MissingField returns a problem field binding.
func (t *Table) MissingField(receiver *Type, name string, problem Problem) *Field {
	if problem == NoProblem {
		problem = NotFound
	}
	return &Field{ID: t.nextID(), Name: name, Declaring: receiver, Problem: problem}
}
