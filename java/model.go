// Package java holds the declaration model the checker is driven from: the
// classes of one source file with their members, resolved positions and the
// already parsed tags of their doc comments.
package java

import (
	"strings"

	"github.com/dhamidi/doccheck/source"
)

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

type ClassModel struct {
	Name           string               `json:"name" yaml:"name"`
	SuperClass     string               `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	Interfaces     []string             `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Kind           ClassKind            `json:"kind,omitempty" yaml:"kind,omitempty"`
	IsLocal        bool                 `json:"local,omitempty" yaml:"local,omitempty"`
	EnclosingClass string               `json:"enclosingClass,omitempty" yaml:"enclosingClass,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	Fields         []FieldModel         `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods        []MethodModel        `json:"methods,omitempty" yaml:"methods,omitempty"`
	Span           source.Span          `json:"span" yaml:"span"`
	Javadoc        *DocModel            `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
}

func (c *ClassModel) SimpleName() string {
	if i := strings.LastIndexByte(c.Name, '.'); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

func (c *ClassModel) Package() string {
	if c.EnclosingClass != "" {
		return PackageOf(c.EnclosingClass)
	}
	return PackageOf(c.Name)
}

// PackageOf treats the leading lowercase components of a qualified name as
// the package.
func PackageOf(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return ""
}

type FieldModel struct {
	Name       string      `json:"name" yaml:"name"`
	Type       TypeModel   `json:"type" yaml:"type"`
	Visibility Visibility  `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic   bool        `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal    bool        `json:"final,omitempty" yaml:"final,omitempty"`
	Span       source.Span `json:"span" yaml:"span"`
	Javadoc    *DocModel   `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
}

type MethodModel struct {
	Name           string               `json:"name" yaml:"name"`
	ReturnType     TypeModel            `json:"returnType" yaml:"returnType"`
	Parameters     []ParameterModel     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic       bool                 `json:"static,omitempty" yaml:"static,omitempty"`
	IsAbstract     bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsConstructor  bool                 `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	IsOverriding   bool                 `json:"overriding,omitempty" yaml:"overriding,omitempty"`
	IsImplementing bool                 `json:"implementing,omitempty" yaml:"implementing,omitempty"`
	Annotations    []AnnotationModel    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Exceptions     []ExceptionModel     `json:"exceptions,omitempty" yaml:"exceptions,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	Span           source.Span          `json:"span" yaml:"span"`
	ReturnSpan     source.Span          `json:"returnSpan" yaml:"returnSpan"`
	Javadoc        *DocModel            `json:"javadoc,omitempty" yaml:"javadoc,omitempty"`
}

// HasAnnotation reports whether the method carries an annotation whose
// simple or qualified name is name.
func (m *MethodModel) HasAnnotation(name string) bool {
	for _, a := range m.Annotations {
		if a.Type == name || strings.HasSuffix(a.Type, "."+name) {
			return true
		}
	}
	return false
}

type ParameterModel struct {
	Name string      `json:"name" yaml:"name"`
	Type TypeModel   `json:"type" yaml:"type"`
	Span source.Span `json:"span" yaml:"span"`
}

type ExceptionModel struct {
	Type TypeModel   `json:"type" yaml:"type"`
	Span source.Span `json:"span" yaml:"span"`
}

type TypeModel struct {
	Name          string      `json:"name" yaml:"name"`
	ArrayDepth    int         `json:"arrayDepth,omitempty" yaml:"arrayDepth,omitempty"`
	TypeArguments []TypeModel `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
}

func (t TypeModel) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeModel) IsVoid() bool {
	return (t.Name == "void" || t.Name == "") && t.ArrayDepth == 0
}

func (t TypeModel) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteByte('<')
		for i, a := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

type TypeParameterModel struct {
	Name   string      `json:"name" yaml:"name"`
	Bounds []TypeModel `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Span   source.Span `json:"span" yaml:"span"`
}

type AnnotationModel struct {
	Type string `json:"type" yaml:"type"`
}

// DocModel is a doc comment whose tags have already been parsed.
type DocModel struct {
	Span          source.Span     `json:"span" yaml:"span"`
	Params        []DocParamModel `json:"params,omitempty" yaml:"params,omitempty"`
	TypeParams    []DocParamModel `json:"typeParams,omitempty" yaml:"typeParams,omitempty"`
	Throws        []DocThrowModel `json:"throws,omitempty" yaml:"throws,omitempty"`
	Return        *source.Span    `json:"return,omitempty" yaml:"return,omitempty"`
	Refs          []DocRefModel   `json:"refs,omitempty" yaml:"refs,omitempty"`
	Inherited     *source.Span    `json:"inherited,omitempty" yaml:"inherited,omitempty"`
	InvalidParams []DocParamModel `json:"invalidParams,omitempty" yaml:"invalidParams,omitempty"`
}

type DocParamModel struct {
	Name    string      `json:"name" yaml:"name"`
	Span    source.Span `json:"span" yaml:"span"`
	TagSpan source.Span `json:"tagSpan" yaml:"tagSpan"`
}

type DocThrowModel struct {
	Name      string      `json:"name" yaml:"name"`
	Exception bool        `json:"exception,omitempty" yaml:"exception,omitempty"`
	Span      source.Span `json:"span" yaml:"span"`
	TagSpan   source.Span `json:"tagSpan" yaml:"tagSpan"`
}

type DocRefModel struct {
	// Kind is one of type, field, method or constructor.
	Kind string `json:"kind" yaml:"kind"`
	// Tag is one of see, link, linkplain or value. Empty means see.
	Tag          string        `json:"tag,omitempty" yaml:"tag,omitempty"`
	Span         source.Span   `json:"span" yaml:"span"`
	Receiver     string        `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	ReceiverSpan source.Span   `json:"receiverSpan" yaml:"receiverSpan"`
	Name         string        `json:"name" yaml:"name"`
	NameSpan     source.Span   `json:"nameSpan" yaml:"nameSpan"`
	Args         []DocArgModel `json:"args,omitempty" yaml:"args,omitempty"`
}

type DocArgModel struct {
	Type string      `json:"type" yaml:"type"`
	Name string      `json:"name,omitempty" yaml:"name,omitempty"`
	Span source.Span `json:"span" yaml:"span"`
}
