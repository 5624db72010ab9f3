package lookup

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/javadoc"
	"github.com/dhamidi/doccheck/source"
)

func widgetUnit() *java.Unit {
	return &java.Unit{File: "Widget.java", Classes: []java.ClassModel{
		{
			Name:           "app.Widget",
			Visibility:     java.VisibilityPublic,
			TypeParameters: []java.TypeParameterModel{{Name: "T", Span: span(20, 21)}},
			Javadoc: &java.DocModel{
				Span: span(0, 18),
				Refs: []java.DocRefModel{{Kind: "type", Name: "Missing", Span: span(5, 12)}},
			},
			Fields: []java.FieldModel{
				{
					Name:    "size",
					Type:    java.TypeModel{Name: "int"},
					Javadoc: &java.DocModel{Params: []java.DocParamModel{{Name: "x", Span: span(40, 41), TagSpan: span(33, 39)}}},
				},
			},
			Methods: []java.MethodModel{
				{
					Name:       "resize",
					Visibility: java.VisibilityPublic,
					ReturnType: java.TypeModel{Name: "boolean"},
					ReturnSpan: span(100, 107),
					Parameters: []java.ParameterModel{
						{Name: "w", Type: java.TypeModel{Name: "int"}, Span: span(120, 121)},
						{Name: "h", Type: java.TypeModel{Name: "int"}, Span: span(127, 128)},
					},
					Exceptions: []java.ExceptionModel{{Type: java.TypeModel{Name: "java.io.IOException"}, Span: span(137, 148)}},
					Javadoc: &java.DocModel{
						Span:   span(60, 98),
						Params: []java.DocParamModel{{Name: "w", Span: span(70, 71), TagSpan: span(63, 69)}},
					},
				},
			},
		},
	}}
}

func TestFromUnitTargets(t *testing.T) {
	_, targets, err := FromUnit(widgetUnit(), config.Default())
	if err != nil {
		t.Fatalf("Failed to build unit: %v", err)
	}
	var names []string
	for _, tg := range targets {
		names = append(names, tg.String())
	}
	want := []string{"app.Widget", "app.Widget#size", "app.Widget#resize"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("Expected targets %v, got %v", want, names)
	}

	if targets[0].Scope.Kind != javadoc.ClassScope {
		t.Errorf("Expected class scope for the class comment")
	}
	if targets[1].Scope.Kind != javadoc.MethodScope || targets[1].Scope.Method != nil {
		t.Errorf("Expected field initializer scope for the field comment")
	}
	decl := targets[2].Scope.Method
	if decl == nil || len(decl.Params) != 2 || len(decl.Thrown) != 1 {
		t.Fatalf("Unexpected method declaration %+v", decl)
	}
	if !decl.Thrown[0].Type.IsValid() || decl.Thrown[0].Name != "java.io.IOException" {
		t.Errorf("Expected resolved IOException, got %s", decl.Thrown[0].Type)
	}
	if decl.ReturnsVoid() {
		t.Error("Expected boolean return")
	}
}

func TestCheckUnit(t *testing.T) {
	bag := diag.NewBag()
	if err := CheckUnit(widgetUnit(), config.Default(), bag); err != nil {
		t.Fatalf("Failed to check unit: %v", err)
	}
	want := []diag.Kind{
		diag.MissingParamTag, // class type parameter T
		diag.UndefinedType,   // @see Missing
		diag.UnexpectedTag,   // @param on a field
		diag.MissingParamTag, // h
		diag.MissingReturnTag,
		diag.MissingThrowsTag,
	}
	if got := bag.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	spans := []source.Span{span(20, 21), span(5, 12), span(33, 39), span(127, 128), span(100, 107), span(137, 148)}
	for i, p := range bag.Items() {
		if p.Span != spans[i] {
			t.Errorf("Problem %d (%s): expected span %v, got %v", i, p.Kind, spans[i], p.Span)
		}
	}
}

func TestCheckUnitHonorsOptions(t *testing.T) {
	opts := config.Default()
	opts.SkipMissingTags = true
	bag := diag.NewBag()
	if err := CheckUnit(widgetUnit(), opts, bag); err != nil {
		t.Fatal(err)
	}
	for _, p := range bag.Items() {
		if p.Kind.IsMissing() {
			t.Errorf("Expected no missing-tag problems, got %s", p.Kind)
		}
	}
	if bag.Count(diag.UndefinedType) != 1 {
		t.Errorf("Expected the unresolved reference to still be reported")
	}
}

func TestFromUnitErrors(t *testing.T) {
	dup := &java.Unit{Classes: []java.ClassModel{{Name: "a.A"}, {Name: "a.A"}}}
	if _, _, err := FromUnit(dup, config.Default()); !errors.Is(err, ErrDuplicateClass) {
		t.Errorf("Expected ErrDuplicateClass, got %v", err)
	}

	badKind := &java.Unit{Classes: []java.ClassModel{{
		Name:    "a.A",
		Javadoc: &java.DocModel{Refs: []java.DocRefModel{{Kind: "package", Name: "a"}}},
	}}}
	if _, _, err := FromUnit(badKind, config.Default()); !errors.Is(err, ErrUnknownRefKind) {
		t.Errorf("Expected ErrUnknownRefKind, got %v", err)
	}

	badTag := &java.Unit{Classes: []java.ClassModel{{
		Name:    "a.A",
		Javadoc: &java.DocModel{Refs: []java.DocRefModel{{Kind: "type", Tag: "code", Name: "a"}}},
	}}}
	if _, _, err := FromUnit(badTag, config.Default()); !errors.Is(err, ErrUnknownRefTag) {
		t.Errorf("Expected ErrUnknownRefTag, got %v", err)
	}
}

func TestConvertRef(t *testing.T) {
	ref, err := convertRef(java.DocRefModel{
		Kind: "method",
		Tag:  "linkplain",
		Span: span(3, 20),
		Name: "run",
		Args: []java.DocArgModel{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ref.Kind != javadoc.RefMethod || ref.Tag != javadoc.TagLinkPlain {
		t.Errorf("Unexpected kind/tag %s/%s", ref.Kind, ref.Tag)
	}
	if ref.Args == nil || len(ref.Args) != 0 {
		t.Errorf("Expected an empty, non-nil argument list, got %#v", ref.Args)
	}
	if ref.NameSpan != span(3, 20) {
		t.Errorf("Expected name span to default to the reference span, got %v", ref.NameSpan)
	}
}
