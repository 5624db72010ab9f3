// Package lookup resolves the names written in doc comments against the
// declarations of one unit. Env implements javadoc.Resolver over a
// binding.Table; FromUnit builds both from a java.Unit.
package lookup

import (
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/java/javadoc"
)

var log = commonlog.GetLogger("doccheck.lookup")

// Env is the resolution environment of one unit. The table is complete once
// FromUnit returns; afterwards Env only adds array types and implicit default
// constructors, both under mu.
type Env struct {
	Table *binding.Table

	// typeParams holds the declared type parameters of generic classes,
	// keyed by class binding.
	typeParams map[binding.ID][]javadoc.TypeParam

	mu       sync.Mutex
	defaults map[binding.ID]*binding.Method
}

var _ javadoc.Resolver = (*Env)(nil)

func NewEnv() *Env {
	e := &Env{
		Table:      binding.NewTable(),
		typeParams: make(map[binding.ID][]javadoc.TypeParam),
		defaults:   make(map[binding.ID]*binding.Method),
	}
	declareLibrary(e.Table)
	return e
}

// ResolveType resolves a type name as written in source. Names are looked
// up as type variables, member types of the enclosing types, qualified
// names, types of the enclosing package, java.lang types and finally by
// unique simple name.
func (e *Env) ResolveType(scope *javadoc.Scope, name string) *binding.Type {
	name = strings.TrimSpace(name)
	if name == "" {
		return missing(name, binding.NotFound)
	}
	if strings.HasSuffix(name, "...") {
		return e.arrayOf(e.ResolveType(scope, strings.TrimSuffix(name, "...")))
	}
	if strings.HasSuffix(name, "[]") {
		return e.arrayOf(e.ResolveType(scope, strings.TrimSuffix(name, "[]")))
	}
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if p := e.Table.Primitive(name); p != nil {
		return p
	}
	if name == "void" {
		return e.Table.Void
	}
	if tv := e.typeVariable(scope, name); tv != nil {
		return tv
	}

	var enclosing *binding.Type
	if scope != nil {
		enclosing = scope.Enclosing
	}
	for t := enclosing; t != nil; t = t.Enclosing {
		if typ := e.declared(t.Name + "." + name); typ != nil {
			return typ
		}
	}
	if typ := e.declared(name); typ != nil {
		return e.visible(typ, enclosing)
	}
	if enclosing != nil {
		if pkg := java.PackageOf(outermost(enclosing).Name); pkg != "" {
			if typ := e.declared(pkg + "." + name); typ != nil {
				return e.visible(typ, enclosing)
			}
		}
	}
	if typ := e.declared("java.lang." + name); typ != nil {
		return typ
	}
	if strings.ContainsRune(name, '.') {
		return missing(name, binding.NotFound)
	}

	switch found := e.Table.LookupSimple(name); len(found) {
	case 0:
		return missing(name, binding.NotFound)
	case 1:
		return e.visible(found[0], enclosing)
	default:
		log.Debugf("type name %s is ambiguous: %d candidates", name, len(found))
		return missing(name, binding.Ambiguous)
	}
}

// declared returns the declared reference type called name. Primitives,
// arrays and parameterizations interned in the table are not declarations.
func (e *Env) declared(name string) *binding.Type {
	typ := e.Table.Lookup(name)
	if typ == nil || typ.Generic != nil {
		return nil
	}
	switch typ.Kind {
	case binding.KindPrimitive, binding.KindVoid, binding.KindArray, binding.KindInvalid:
		return nil
	}
	return typ
}

// visible hides private member types from code outside their top-level
// type.
func (e *Env) visible(typ, from *binding.Type) *binding.Type {
	if typ.Visibility != binding.VisibilityPrivate || typ.Enclosing == nil {
		return typ
	}
	if from != nil && outermost(from).Same(outermost(typ)) {
		return typ
	}
	return missing(typ.Name, binding.NotVisible)
}

func (e *Env) typeVariable(scope *javadoc.Scope, name string) *binding.Type {
	if scope == nil {
		return nil
	}
	if scope.Method != nil {
		for _, tp := range scope.Method.TypeParams {
			if tp.Name == name && tp.Binding != nil {
				return tp.Binding
			}
		}
		if scope.Method.Binding != nil {
			for _, tv := range scope.Method.Binding.TypeVariables {
				if tv.Name == name {
					return tv
				}
			}
		}
	}
	if scope.Type != nil {
		for _, tp := range scope.Type.TypeParams {
			if tp.Name == name && tp.Binding != nil {
				return tp.Binding
			}
		}
	}
	for t := scope.Enclosing; t != nil; t = t.Enclosing {
		for _, tp := range e.typeParams[t.ID] {
			if tp.Name == name && tp.Binding != nil {
				return tp.Binding
			}
		}
	}
	return nil
}

func (e *Env) arrayOf(elem *binding.Type) *binding.Type {
	if !elem.IsValid() {
		return elem
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Table.ArrayOf(elem)
}

// ResolveVariable resolves name to a formal parameter of the scope's
// method.
func (e *Env) ResolveVariable(scope *javadoc.Scope, name string) *binding.Variable {
	if scope != nil && scope.Method != nil {
		for _, p := range scope.Method.Params {
			if p.Name == name && p.Binding != nil {
				return p.Binding
			}
		}
	}
	return &binding.Variable{Name: name, Problem: binding.NotFound}
}

func (e *Env) FindField(scope *javadoc.Scope, receiver *binding.Type, name string) *binding.Field {
	if !receiver.IsValid() {
		return &binding.Field{Name: name, Declaring: receiver, Problem: binding.NotFound}
	}
	if f := receiver.FindField(name); f != nil {
		if f.Visibility == binding.VisibilityPrivate && !sameTopLevel(scope, f.Declaring) {
			return &binding.Field{Name: name, Declaring: receiver, Problem: binding.NotVisible}
		}
		return f
	}
	return &binding.Field{Name: name, Declaring: receiver, Problem: binding.NotFound}
}

// FindMethod prefers a method whose parameter erasures equal the argument
// erasures and falls back to the nearest method the arguments are
// compatible with.
func (e *Env) FindMethod(scope *javadoc.Scope, receiver *binding.Type, selector string, args []*binding.Type) *binding.Method {
	if !receiver.IsValid() {
		return &binding.Method{Selector: selector, Declaring: receiver, Problem: binding.NotFound}
	}
	return pick(receiver, selector, receiver.MethodsNamed(selector), args)
}

// FindConstructor looks up a constructor of receiver. A class that declares
// no constructor has an implicit public one without parameters.
func (e *Env) FindConstructor(scope *javadoc.Scope, receiver *binding.Type, args []*binding.Type) *binding.Method {
	if !receiver.IsValid() {
		return &binding.Method{Selector: binding.ConstructorSelector, Declaring: receiver, Problem: binding.NotFound}
	}
	candidates := receiver.MethodsNamed(binding.ConstructorSelector)
	if len(candidates) == 0 && receiver.IsClass() {
		candidates = []*binding.Method{e.defaultConstructor(receiver.Erasure())}
	}
	return pick(receiver, binding.ConstructorSelector, candidates, args)
}

func (e *Env) defaultConstructor(typ *binding.Type) *binding.Method {
	e.mu.Lock()
	defer e.mu.Unlock()
	if m, ok := e.defaults[typ.ID]; ok {
		return m
	}
	// Not added to typ.Methods: the type stays as declared. IDs counted down
	// from the top of the range never meet the ones the table hands out.
	m := &binding.Method{
		ID:         ^typ.ID,
		Selector:   binding.ConstructorSelector,
		Declaring:  typ,
		Return:     e.Table.Void,
		Visibility: binding.VisibilityPublic,
	}
	log.Debugf("implicit default constructor for %s", typ.Name)
	e.defaults[typ.ID] = m
	return m
}

func pick(receiver *binding.Type, selector string, candidates []*binding.Method, args []*binding.Type) *binding.Method {
	for _, m := range candidates {
		if erasuresEqual(m.Params, args) {
			return m
		}
	}
	for _, m := range candidates {
		if m.ParametersCompatibleWith(args) {
			return m
		}
	}
	return &binding.Method{Selector: selector, Declaring: receiver, Problem: binding.NotFound}
}

func erasuresEqual(params, args []*binding.Type) bool {
	if len(params) != len(args) {
		return false
	}
	for i := range params {
		if !params[i].Erasure().Same(args[i].Erasure()) {
			return false
		}
	}
	return true
}

func sameTopLevel(scope *javadoc.Scope, typ *binding.Type) bool {
	return scope != nil && scope.Enclosing != nil && outermost(scope.Enclosing).Same(outermost(typ))
}

func outermost(t *binding.Type) *binding.Type {
	for t != nil && t.Enclosing != nil {
		t = t.Enclosing
	}
	return t
}

// missing returns a problem type. It carries no ID, so it never compares
// equal to any binding.
func missing(name string, problem binding.Problem) *binding.Type {
	return &binding.Type{Kind: binding.KindInvalid, Name: name, Problem: problem}
}
