package javadoc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/source"
)

func span(start, end int) source.Span {
	return source.Span{Start: start, End: end}
}

// fakeResolver resolves simple and qualified names against a table.
type fakeResolver struct {
	table *binding.Table
	// aliases maps extra spellings to parameter names.
	aliases map[string]string
	// typeVars are type variables visible in every scope.
	typeVars map[string]*binding.Type
}

func (r *fakeResolver) ResolveType(scope *Scope, name string) *binding.Type {
	if strings.HasSuffix(name, "[]") {
		elem := r.ResolveType(scope, strings.TrimSuffix(name, "[]"))
		if !elem.IsValid() {
			return elem
		}
		return r.table.ArrayOf(elem)
	}
	if p := r.table.Primitive(name); p != nil {
		return p
	}
	if scope != nil && scope.Method != nil {
		for _, tp := range scope.Method.TypeParams {
			if tp.Name == name {
				return tp.Binding
			}
		}
	}
	if scope != nil && scope.Type != nil {
		for _, tp := range scope.Type.TypeParams {
			if tp.Name == name {
				return tp.Binding
			}
		}
	}
	if tv, ok := r.typeVars[name]; ok {
		return tv
	}
	if typ := r.table.Lookup(name); typ != nil {
		return typ
	}
	if found := r.table.LookupSimple(name); len(found) == 1 {
		return found[0]
	}
	return r.table.Missing(name, binding.NotFound)
}

func (r *fakeResolver) ResolveVariable(scope *Scope, name string) *binding.Variable {
	if alias, ok := r.aliases[name]; ok {
		name = alias
	}
	if scope != nil && scope.Method != nil {
		for _, p := range scope.Method.Params {
			if p.Name == name {
				return p.Binding
			}
		}
	}
	return &binding.Variable{Name: name, Problem: binding.NotFound}
}

func (r *fakeResolver) FindField(scope *Scope, receiver *binding.Type, name string) *binding.Field {
	if f := receiver.FindField(name); f != nil {
		return f
	}
	return r.table.MissingField(receiver, name, binding.NotFound)
}

func (r *fakeResolver) FindMethod(scope *Scope, receiver *binding.Type, selector string, args []*binding.Type) *binding.Method {
	return r.match(receiver, selector, args)
}

func (r *fakeResolver) FindConstructor(scope *Scope, receiver *binding.Type, args []*binding.Type) *binding.Method {
	return r.match(receiver, binding.ConstructorSelector, args)
}

func (r *fakeResolver) match(receiver *binding.Type, selector string, args []*binding.Type) *binding.Method {
	for _, m := range receiver.MethodsNamed(selector) {
		if len(m.Params) != len(args) {
			continue
		}
		same := true
		for i := range args {
			if !m.Params[i].Erasure().Same(args[i].Erasure()) {
				same = false
			}
		}
		if same {
			return m
		}
	}
	return r.table.MissingMethod(receiver, selector, binding.NotFound)
}

// fixture is a small class hierarchy:
//
//	class p.Base { static int MAX; String name; int run(int, String) throws IOException; int size(); Base(int) }
//	interface p.Runner { void go(); }
//	class p.Sub extends Base implements Runner { Sub(int) }
//	class p.Box<T>
type fixture struct {
	table *binding.Table
	res   *fakeResolver

	base, sub, runner, box *binding.Type
	boxT                   *binding.Type

	ioe, fnf, appEx, illegal, fatal *binding.Type

	run, size, baseInit, subInit *binding.Method
	max, name                    *binding.Field
}

func newFixture() *fixture {
	t := binding.NewTable()
	f := &fixture{table: t, res: &fakeResolver{table: t}}
	intType := t.Primitive("int")

	t.Method(t.Object, "toString", t.String)

	f.ioe = t.Class("java.io.IOException", t.Exception)
	f.fnf = t.Class("java.io.FileNotFoundException", f.ioe)
	f.illegal = t.Class("java.lang.IllegalArgumentException", t.RuntimeException)
	f.appEx = t.Class("p.AppException", t.Exception)
	f.fatal = t.Class("p.Fatal", t.Error)

	f.runner = t.Interface("p.Runner")
	t.Method(f.runner, "go", nil)

	f.base = t.Class("p.Base", nil)
	f.run = t.Method(f.base, "run", intType, intType, t.String)
	f.run.Thrown = []*binding.Type{f.ioe}
	f.size = t.Method(f.base, "size", intType)
	f.baseInit = t.Constructor(f.base, intType)
	f.max = t.Field(f.base, "MAX", intType, true)
	f.name = t.Field(f.base, "name", t.String, false)

	f.sub = t.Class("p.Sub", f.base, f.runner)
	f.subInit = t.Constructor(f.sub, intType)

	f.box = t.Class("p.Box", nil)
	f.boxT = t.TypeVariable("T")
	return f
}

// declare builds the declaration of m. Parameter i is named names[i] and
// spans [100+10i, 100+10i+len(name)); throws entry i spans [200+10i,
// 201+10i); type parameter i spans [300+10i, 301+10i). The return type
// spans [90, 93).
func (f *fixture) declare(m *binding.Method, names ...string) *MethodDecl {
	d := &MethodDecl{Binding: m, ReturnSpan: span(90, 93)}
	for i, typ := range m.Params {
		start := 100 + 10*i
		d.Params = append(d.Params, Param{
			Name:    names[i],
			Span:    span(start, start+len(names[i])),
			Binding: f.table.Variable(names[i], typ),
		})
	}
	for i, typ := range m.Thrown {
		d.Thrown = append(d.Thrown, Thrown{Name: typ.Name, Span: span(200+10*i, 201+10*i), Type: typ})
	}
	for i, tv := range m.TypeVariables {
		d.TypeParams = append(d.TypeParams, TypeParam{Name: tv.Name, Span: span(300+10*i, 301+10*i), Binding: tv})
	}
	return d
}

// voidMethod declares a void method on owner and returns its declaration.
func (f *fixture) voidMethod(owner *binding.Type, selector string, names []string, params []*binding.Type, thrown ...*binding.Type) *MethodDecl {
	m := f.table.Method(owner, selector, nil, params...)
	m.Thrown = thrown
	return f.declare(m, names...)
}

func (f *fixture) methodScope(decl *MethodDecl) *Scope {
	return NewMethodScope(nil, decl, f.res, config.Default())
}

func (f *fixture) classScope(typ *binding.Type, params ...TypeParam) *Scope {
	return NewClassScope(&TypeDecl{Binding: typ, TypeParams: params}, f.res, config.Default())
}

func check(c *Comment, s *Scope) *diag.Bag {
	bag := diag.NewBag()
	Check(c, s, bag)
	return bag
}

func assertKinds(t *testing.T, bag *diag.Bag, want ...diag.Kind) {
	t.Helper()
	got := bag.Kinds()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected problems %v, got %v", want, got)
		for _, p := range bag.Items() {
			t.Logf("  %s at %s: %s", p.Kind, p.Span, p.Message)
		}
	}
}

func paramTag(name string, at int) *ParamTag {
	return &ParamTag{Name: name, Span: span(at, at+len(name)), TagSpan: span(at-7, at-1)}
}

func typeParamTag(name string, at int) *TypeParamTag {
	return &TypeParamTag{Name: name, Span: span(at, at+len(name)+2), TagSpan: span(at-7, at-1)}
}

func throwsTag(name string, at int) *ThrownTag {
	return &ThrownTag{Name: name, Span: span(at, at+len(name)), TagSpan: span(at-8, at-1)}
}

func typeRef(name string, at int) *CrossRef {
	s := span(at, at+len(name))
	return &CrossRef{Kind: RefType, Span: s, Name: name, NameSpan: s}
}

func fieldRef(receiver, name string, at int) *CrossRef {
	ref := &CrossRef{
		Kind:     RefField,
		Span:     span(at, at+len(receiver)+1+len(name)),
		Receiver: receiver,
		Name:     name,
		NameSpan: span(at+len(receiver)+1, at+len(receiver)+1+len(name)),
	}
	if receiver != "" {
		ref.ReceiverSpan = span(at, at+len(receiver))
	}
	return ref
}

// methodRef builds Receiver#name(args...). The argument list is never nil.
func methodRef(receiver, name string, at int, args ...string) *CrossRef {
	ref := fieldRef(receiver, name, at)
	ref.Kind = RefMethod
	ref.Args = []*Argument{}
	cursor := ref.NameSpan.End + 1
	for _, a := range args {
		ref.Args = append(ref.Args, &Argument{Type: a, Span: span(cursor, cursor+len(a))})
		cursor += len(a) + 2
	}
	ref.Span.End = cursor
	return ref
}

func ctorRef(receiver string, at int, args ...string) *CrossRef {
	name := receiver
	if i := strings.LastIndexByte(receiver, '.'); i >= 0 {
		name = receiver[i+1:]
	}
	ref := methodRef(receiver, name, at, args...)
	ref.Kind = RefConstructor
	return ref
}

func valueTag(ref *CrossRef) *CrossRef {
	ref.Tag = TagValue
	return ref
}
