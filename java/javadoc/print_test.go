package javadoc

import "testing"

func TestCommentString(t *testing.T) {
	exception := throwsTag("IllegalStateException", 60)
	exception.Exception = true
	link := methodRef("List", "add", 80, "int", "E")
	link.Args[1].Name = "element"
	link.Tag = TagLink
	plain := ctorRef("Base", 100)
	plain.Tag = TagLinkPlain

	c := &Comment{
		Params:     []*ParamTag{paramTag("value", 10)},
		TypeParams: []*TypeParamTag{typeParamTag("T", 20)},
		Return:     &ReturnTag{Span: span(30, 37)},
		Throws:     []*ThrownTag{throwsTag("IOException", 40), exception},
		Refs: []*CrossRef{
			typeRef("java.util.List", 70),
			link,
			plain,
			valueTag(fieldRef("", "MAX", 120)),
		},
	}

	want := `/**
 * @param value
 * @param <T>
 * @return
 * @throws IOException
 * @exception IllegalStateException
 * @see java.util.List
 * {@link List#add(int, E element)}
 * {@linkplain Base#Base()}
 * {@value #MAX}
 */`
	if got := c.String(); got != want {
		t.Errorf("Unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestCommentStringEmpty(t *testing.T) {
	if got := (&Comment{}).String(); got != "/**\n */" {
		t.Errorf("Unexpected rendering %q", got)
	}
	var c *Comment
	if c.String() != "" {
		t.Error("Expected empty rendering for nil comment")
	}
}

func TestDescribe(t *testing.T) {
	f := newFixture()
	decl := f.declare(f.run, "n", "s")
	param := paramTag("n", 10)
	unknown := paramTag("zz", 20)
	method := methodRef("Base", "run", 60, "int", "String")
	missing := typeRef("Nope", 90)
	c := &Comment{Params: []*ParamTag{param, unknown}, Refs: []*CrossRef{method, missing}}
	check(c, f.methodScope(decl))

	tests := []struct {
		node Node
		want string
	}{
		{param, "@param n: parameter int n"},
		{unknown, "@param zz: unresolved"},
		{method, "@see Base#run(int, String): method p.Base.run(int, java.lang.String)"},
		{method.Args[0], "argument int: int"},
		{missing, "@see Nope: unresolved"},
		{&ReturnTag{}, "@return"},
	}
	for _, tt := range tests {
		if got := Describe(tt.node); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
