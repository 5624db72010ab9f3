package lookup

import (
	"sync"
	"testing"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/java/javadoc"
	"github.com/dhamidi/doccheck/source"
)

func span(start, end int) source.Span {
	return source.Span{Start: start, End: end}
}

// fixture declares p.Base<T> with an inner class, a subclass and an
// exception, plus q.Base so the simple name Base is ambiguous outside p.
func fixture(t *testing.T) (*Env, *java.Unit) {
	t.Helper()
	unit := &java.Unit{Classes: []java.ClassModel{
		{
			Name:           "p.Base",
			Visibility:     java.VisibilityPublic,
			TypeParameters: []java.TypeParameterModel{{Name: "T", Span: span(10, 11)}},
			Fields: []java.FieldModel{
				{Name: "COUNT", Type: java.TypeModel{Name: "int"}, IsStatic: true, Visibility: java.VisibilityPublic},
				{Name: "secret", Type: java.TypeModel{Name: "String"}, Visibility: java.VisibilityPrivate},
			},
			Methods: []java.MethodModel{
				{Name: "run", ReturnType: java.TypeModel{Name: "void"}},
				{
					Name:       "run",
					ReturnType: java.TypeModel{Name: "int"},
					Parameters: []java.ParameterModel{{Name: "n", Type: java.TypeModel{Name: "int"}}},
				},
				{
					Name:       "accept",
					ReturnType: java.TypeModel{Name: "void"},
					Parameters: []java.ParameterModel{{Name: "o", Type: java.TypeModel{Name: "Object"}}},
				},
				{
					Name:           "map",
					ReturnType:     java.TypeModel{Name: "U"},
					TypeParameters: []java.TypeParameterModel{{Name: "U"}},
					Parameters:     []java.ParameterModel{{Name: "value", Type: java.TypeModel{Name: "T"}}},
				},
			},
		},
		{
			Name:           "p.Base.Inner",
			EnclosingClass: "p.Base",
			Visibility:     java.VisibilityPrivate,
		},
		{
			Name:       "p.Sub",
			SuperClass: "Base",
			Methods: []java.MethodModel{
				{IsConstructor: true, Parameters: []java.ParameterModel{{Name: "x", Type: java.TypeModel{Name: "String"}}}},
			},
		},
		{Name: "p.BadThing", SuperClass: "Exception"},
		{Name: "q.Base"},
		{Name: "q.Other", SuperClass: "com.vendor.Thing"},
	}}
	e, _, err := FromUnit(unit, config.Default())
	if err != nil {
		t.Fatalf("Failed to build unit: %v", err)
	}
	return e, unit
}

func classScope(e *Env, name string) *javadoc.Scope {
	return &javadoc.Scope{Kind: javadoc.ClassScope, Enclosing: e.Table.Lookup(name), Resolver: e}
}

func TestResolveType(t *testing.T) {
	e, _ := fixture(t)
	inBase := classScope(e, "p.Base")
	inSub := classScope(e, "p.Sub")
	inOther := classScope(e, "q.Other")

	tests := []struct {
		name    string
		scope   *javadoc.Scope
		lookup  string
		want    string
		problem binding.Problem
	}{
		{"primitive", inBase, "int", "int", binding.NoProblem},
		{"java.lang", inBase, "String", "java.lang.String", binding.NoProblem},
		{"qualified", inOther, "p.Sub", "p.Sub", binding.NoProblem},
		{"same package", inSub, "BadThing", "p.BadThing", binding.NoProblem},
		{"same package wins over other packages", inSub, "Base", "p.Base", binding.NoProblem},
		{"member type", inBase, "Inner", "p.Base.Inner", binding.NoProblem},
		{"generic arguments are ignored", inSub, "Base<String>", "p.Base", binding.NoProblem},
		{"array", inBase, "int[]", "int[]", binding.NoProblem},
		{"varargs", inBase, "String...", "java.lang.String[]", binding.NoProblem},
		{"library", inBase, "IOException", "java.io.IOException", binding.NoProblem},
		{"external", inOther, "Thing", "com.vendor.Thing", binding.NoProblem},
		{"unique simple name", inOther, "Sub", "p.Sub", binding.NoProblem},
		{"not found", inBase, "Nope", "Nope", binding.NotFound},
		{"qualified not found", inBase, "x.y.Nope", "x.y.Nope", binding.NotFound},
		{"private member type from outside", inOther, "p.Base.Inner", "p.Base.Inner", binding.NotVisible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ResolveType(tt.scope, tt.lookup)
			if got == nil {
				t.Fatal("Expected a binding, got nil")
			}
			if got.Name != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Name)
			}
			if got.Problem != tt.problem {
				t.Errorf("Expected problem %s, got %s", tt.problem, got.Problem)
			}
		})
	}
}

func TestResolveTypeAmbiguous(t *testing.T) {
	e, _ := fixture(t)
	// From a class in neither package, Base names both p.Base and q.Base.
	scope := &javadoc.Scope{Kind: javadoc.ClassScope, Enclosing: e.Table.Object, Resolver: e}
	got := e.ResolveType(scope, "Base")
	if got.Problem != binding.Ambiguous {
		t.Errorf("Expected ambiguous, got %s (%s)", got.Problem, got.Name)
	}
}

func TestResolveTypeVariables(t *testing.T) {
	e, _ := fixture(t)
	base := e.Table.Lookup("p.Base")
	mapMethod := base.MethodsNamed("map")[0]
	if len(mapMethod.TypeVariables) != 1 {
		t.Fatalf("Expected 1 method type variable, got %d", len(mapMethod.TypeVariables))
	}
	if !mapMethod.Return.Same(mapMethod.TypeVariables[0]) {
		t.Errorf("Expected map to return its own type variable, got %s", mapMethod.Return)
	}
	if !mapMethod.Params[0].IsTypeVariable() || mapMethod.Params[0].Name != "T" {
		t.Errorf("Expected parameter of class type variable T, got %s", mapMethod.Params[0])
	}

	inner := classScope(e, "p.Base.Inner")
	tv := e.ResolveType(inner, "T")
	if !tv.Same(mapMethod.Params[0]) {
		t.Errorf("Expected T to resolve through the enclosing class, got %s", tv)
	}
	if e.ResolveType(classScope(e, "p.Sub"), "T").IsValid() {
		t.Error("Expected T to be unknown outside Base")
	}
}

func TestFindMethod(t *testing.T) {
	e, _ := fixture(t)
	table := e.Table
	base := table.Lookup("p.Base")
	sub := table.Lookup("p.Sub")
	scope := classScope(e, "p.Sub")
	intType := table.Primitive("int")

	noArgs := e.FindMethod(scope, base, "run", nil)
	if !noArgs.IsValid() || len(noArgs.Params) != 0 {
		t.Errorf("Expected run() for nil args, got %v", noArgs)
	}
	oneArg := e.FindMethod(scope, base, "run", []*binding.Type{intType})
	if !oneArg.IsValid() || len(oneArg.Params) != 1 {
		t.Errorf("Expected run(int), got %v", oneArg)
	}
	inherited := e.FindMethod(scope, sub, "run", []*binding.Type{intType})
	if !inherited.Same(oneArg) {
		t.Errorf("Expected inherited run(int), got %v", inherited)
	}
	compatible := e.FindMethod(scope, base, "accept", []*binding.Type{table.String})
	if !compatible.IsValid() {
		t.Error("Expected accept(Object) to accept a String")
	}
	if m := e.FindMethod(scope, base, "run", []*binding.Type{table.String}); m.IsValid() {
		t.Errorf("Expected no run(String), got %v", m)
	}
	if m := e.FindMethod(scope, nil, "run", nil); m.IsValid() {
		t.Error("Expected invalid method on nil receiver")
	}
}

func TestFindField(t *testing.T) {
	e, _ := fixture(t)
	base := e.Table.Lookup("p.Base")
	sub := e.Table.Lookup("p.Sub")

	if f := e.FindField(classScope(e, "p.Sub"), sub, "COUNT"); !f.IsValid() || !f.IsStatic() {
		t.Errorf("Expected inherited static COUNT, got %+v", f)
	}
	if f := e.FindField(classScope(e, "p.Base"), base, "secret"); !f.IsValid() {
		t.Errorf("Expected private field visible in its own class, got %+v", f)
	}
	if f := e.FindField(classScope(e, "q.Other"), base, "secret"); f.Problem != binding.NotVisible {
		t.Errorf("Expected private field not visible from q.Other, got %s", f.Problem)
	}
	if f := e.FindField(classScope(e, "p.Base"), base, "missing"); f.Problem != binding.NotFound {
		t.Errorf("Expected not found, got %s", f.Problem)
	}
}

func TestFindConstructor(t *testing.T) {
	e, _ := fixture(t)
	base := e.Table.Lookup("p.Base")
	sub := e.Table.Lookup("p.Sub")
	scope := classScope(e, "p.Sub")

	var wg sync.WaitGroup
	results := make([]*binding.Method, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.FindConstructor(scope, base, nil)
		}(i)
	}
	wg.Wait()
	for i, m := range results {
		if !m.IsValid() || !m.IsConstructor() {
			t.Fatalf("Expected implicit constructor, got %v", m)
		}
		if m != results[0] {
			t.Errorf("Expected result %d to be the memoized constructor", i)
		}
	}
	if len(base.Methods) != 4 {
		t.Errorf("Expected the implicit constructor not to be added to Base, got %d methods", len(base.Methods))
	}

	if m := e.FindConstructor(scope, sub, nil); m.IsValid() {
		t.Error("Expected no Sub() when Sub declares a constructor")
	}
	if m := e.FindConstructor(scope, sub, []*binding.Type{e.Table.String}); !m.IsValid() {
		t.Error("Expected Sub(String)")
	}
}

func TestResolveVariable(t *testing.T) {
	e, _ := fixture(t)
	v := e.Table.Variable("n", e.Table.Primitive("int"))
	scope := &javadoc.Scope{
		Kind:   javadoc.MethodScope,
		Method: &javadoc.MethodDecl{Params: []javadoc.Param{{Name: "n", Binding: v}}},
	}
	if got := e.ResolveVariable(scope, "n"); !got.Same(v) {
		t.Errorf("Expected parameter n, got %+v", got)
	}
	if got := e.ResolveVariable(scope, "m"); got.IsValid() {
		t.Errorf("Expected unknown parameter, got %+v", got)
	}
	if got := e.ResolveVariable(&javadoc.Scope{Kind: javadoc.MethodScope}, "n"); got.IsValid() {
		t.Errorf("Expected no parameters in a field initializer, got %+v", got)
	}
}
