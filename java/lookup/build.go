package lookup

import (
	"errors"
	"fmt"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/binding"
	"github.com/dhamidi/doccheck/java/javadoc"
)

var (
	ErrUnknownRefKind = errors.New("unknown reference kind")
	ErrUnknownRefTag  = errors.New("unknown reference tag")
	ErrDuplicateClass = errors.New("duplicate class")
)

// Target is one documented declaration, ready to be checked.
type Target struct {
	// Owner is the qualified name of the class the declaration belongs to.
	Owner string
	// Member is the method or field name, empty for a class comment.
	Member  string
	Comment *javadoc.Comment
	Scope   *javadoc.Scope
}

func (t *Target) Check(r diag.Reporter) {
	javadoc.Check(t.Comment, t.Scope, r)
}

func (t *Target) String() string {
	if t.Member == "" {
		return t.Owner
	}
	return t.Owner + "#" + t.Member
}

// FromUnit builds the bindings of unit's classes and one Target per doc
// comment, in declaration order.
func FromUnit(unit *java.Unit, opts config.Options) (*Env, []*Target, error) {
	e := NewEnv()
	b := &builder{env: e, opts: opts}
	if err := b.declare(unit); err != nil {
		return nil, nil, err
	}
	for i := range unit.Classes {
		b.declareTypeParams(&unit.Classes[i])
	}
	for i := range unit.Classes {
		b.define(&unit.Classes[i])
	}
	var targets []*Target
	for i := range unit.Classes {
		t, err := b.targets(&unit.Classes[i])
		if err != nil {
			return nil, nil, fmt.Errorf("class %s: %w", unit.Classes[i].Name, err)
		}
		targets = append(targets, t...)
	}
	return e, targets, nil
}

// CheckUnit builds unit and checks every doc comment in it.
func CheckUnit(unit *java.Unit, opts config.Options, r diag.Reporter) error {
	_, targets, err := FromUnit(unit, opts)
	if err != nil {
		return err
	}
	for _, t := range targets {
		log.Debugf("checking %s", t)
		t.Check(r)
	}
	return nil
}

type builder struct {
	env   *Env
	opts  config.Options
	decls map[string]*declared
}

type declared struct {
	typ     *binding.Type
	decl    *javadoc.TypeDecl
	methods []*javadoc.MethodDecl
}

// declare interns every class of the unit, then every external qualified
// type the declarations mention.
func (b *builder) declare(unit *java.Unit) error {
	b.decls = make(map[string]*declared)
	for i := range unit.Classes {
		cls := &unit.Classes[i]
		if _, ok := b.decls[cls.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, cls.Name)
		}
		typ := b.env.Table.Declare(cls.Name, classKind(cls.Kind))
		typ.Visibility = visibility(cls.Visibility, binding.VisibilityPackage)
		typ.Local = cls.IsLocal
		b.decls[cls.Name] = &declared{typ: typ, decl: &javadoc.TypeDecl{Binding: typ}}
	}
	for i := range unit.Classes {
		cls := &unit.Classes[i]
		if cls.EnclosingClass != "" {
			if outer, ok := b.decls[cls.EnclosingClass]; ok {
				b.decls[cls.Name].typ.Enclosing = outer.typ
			}
		}
		for _, name := range referencedNames(cls) {
			if java.PackageOf(name) == "" || b.env.Table.Lookup(name) != nil {
				continue
			}
			log.Debugf("declaring external type %s", name)
			b.env.Table.Class(name, nil)
		}
	}
	return nil
}

func (b *builder) declareTypeParams(cls *java.ClassModel) {
	d := b.decls[cls.Name]
	for _, tp := range cls.TypeParameters {
		d.decl.TypeParams = append(d.decl.TypeParams, javadoc.TypeParam{
			Name:    tp.Name,
			Span:    tp.Span,
			Binding: b.env.Table.TypeVariable(tp.Name),
		})
	}
	b.env.typeParams[d.typ.ID] = d.decl.TypeParams
}

// define resolves bounds, supertypes and members.
func (b *builder) define(cls *java.ClassModel) {
	d := b.decls[cls.Name]
	typ := d.typ
	table := b.env.Table

	classScope := &javadoc.Scope{Kind: javadoc.ClassScope, Enclosing: typ, Type: d.decl}
	for i, tp := range cls.TypeParameters {
		d.decl.TypeParams[i].Binding.Bounds = b.resolveAll(classScope, tp.Bounds)
	}

	if typ.IsInterface() {
		typ.Superclass = table.Object
		typ.Interfaces = b.resolveAll(classScope, namedTypes(cls.Interfaces))
		// Interfaces listed as super classes extend, too.
		if cls.SuperClass != "" {
			typ.Interfaces = append(typ.Interfaces, b.resolve(classScope, java.TypeModel{Name: cls.SuperClass}))
		}
	} else {
		typ.Superclass = table.Object
		if cls.SuperClass != "" {
			typ.Superclass = b.resolve(classScope, java.TypeModel{Name: cls.SuperClass})
		}
		typ.Interfaces = b.resolveAll(classScope, namedTypes(cls.Interfaces))
	}

	for _, f := range cls.Fields {
		field := table.Field(typ, f.Name, b.resolve(classScope, f.Type), f.IsStatic || typ.IsInterface())
		field.Visibility = visibility(f.Visibility, memberDefault(typ))
	}

	for i := range cls.Methods {
		d.methods = append(d.methods, b.method(typ, classScope, &cls.Methods[i]))
	}
}

func (b *builder) method(typ *binding.Type, classScope *javadoc.Scope, m *java.MethodModel) *javadoc.MethodDecl {
	table := b.env.Table
	decl := &javadoc.MethodDecl{ReturnSpan: m.ReturnSpan}
	for _, tp := range m.TypeParameters {
		decl.TypeParams = append(decl.TypeParams, javadoc.TypeParam{
			Name:    tp.Name,
			Span:    tp.Span,
			Binding: table.TypeVariable(tp.Name),
		})
	}
	scope := &javadoc.Scope{Kind: javadoc.MethodScope, Enclosing: typ, Type: classScope.Type, Method: decl}
	for i, tp := range m.TypeParameters {
		decl.TypeParams[i].Binding.Bounds = b.resolveAll(scope, tp.Bounds)
	}

	params := make([]*binding.Type, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = b.resolve(scope, p.Type)
		decl.Params = append(decl.Params, javadoc.Param{
			Name:    p.Name,
			Span:    p.Span,
			Binding: table.Variable(p.Name, params[i]),
		})
	}

	var mb *binding.Method
	if m.IsConstructor {
		mb = table.Constructor(typ, params...)
	} else {
		ret := table.Void
		if !m.ReturnType.IsVoid() {
			ret = b.resolve(scope, m.ReturnType)
		}
		mb = table.Method(typ, m.Name, ret, params...)
	}
	mb.Static = m.IsStatic
	mb.Overriding = m.IsOverriding
	mb.Implementing = m.IsImplementing
	mb.OverrideAnnotation = m.HasAnnotation("Override")
	mb.Visibility = visibility(m.Visibility, memberDefault(typ))
	for _, tp := range decl.TypeParams {
		mb.TypeVariables = append(mb.TypeVariables, tp.Binding)
	}
	for _, ex := range m.Exceptions {
		thrown := b.resolve(scope, ex.Type)
		mb.Thrown = append(mb.Thrown, thrown)
		decl.Thrown = append(decl.Thrown, javadoc.Thrown{Name: ex.Type.String(), Span: ex.Span, Type: thrown})
	}
	decl.Binding = mb
	return decl
}

func (b *builder) resolve(scope *javadoc.Scope, t java.TypeModel) *binding.Type {
	typ := b.env.ResolveType(scope, t.Name)
	if len(t.TypeArguments) > 0 && typ.IsValid() && !typ.IsTypeVariable() {
		typ = b.env.Table.Parameterize(typ, b.resolveAll(scope, t.TypeArguments)...)
	}
	for i := 0; i < t.ArrayDepth && typ.IsValid(); i++ {
		typ = b.env.Table.ArrayOf(typ)
	}
	return typ
}

func (b *builder) resolveAll(scope *javadoc.Scope, models []java.TypeModel) []*binding.Type {
	if len(models) == 0 {
		return nil
	}
	out := make([]*binding.Type, len(models))
	for i, m := range models {
		out[i] = b.resolve(scope, m)
	}
	return out
}

// targets pairs every doc comment of cls with its declaration scope.
func (b *builder) targets(cls *java.ClassModel) ([]*Target, error) {
	d := b.decls[cls.Name]
	var out []*Target

	if cls.Javadoc != nil {
		c, err := convertComment(cls.Javadoc)
		if err != nil {
			return nil, err
		}
		out = append(out, &Target{
			Owner:   cls.Name,
			Comment: c,
			Scope:   javadoc.NewClassScope(d.decl, b.env, b.opts),
		})
	}
	for _, f := range cls.Fields {
		if f.Javadoc == nil {
			continue
		}
		c, err := convertComment(f.Javadoc)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out = append(out, &Target{
			Owner:   cls.Name,
			Member:  f.Name,
			Comment: c,
			Scope:   javadoc.NewMethodScope(d.typ, nil, b.env, b.opts),
		})
	}
	for i, m := range cls.Methods {
		if m.Javadoc == nil {
			continue
		}
		c, err := convertComment(m.Javadoc)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		out = append(out, &Target{
			Owner:   cls.Name,
			Member:  m.Name,
			Comment: c,
			Scope:   javadoc.NewMethodScope(d.typ, d.methods[i], b.env, b.opts),
		})
	}
	return out, nil
}

func convertComment(doc *java.DocModel) (*javadoc.Comment, error) {
	c := &javadoc.Comment{Span: doc.Span, Inherited: doc.Inherited}
	for _, p := range doc.Params {
		c.Params = append(c.Params, &javadoc.ParamTag{Name: p.Name, Span: p.Span, TagSpan: p.TagSpan})
	}
	for _, p := range doc.InvalidParams {
		c.InvalidParams = append(c.InvalidParams, &javadoc.ParamTag{Name: p.Name, Span: p.Span, TagSpan: p.TagSpan})
	}
	for _, p := range doc.TypeParams {
		c.TypeParams = append(c.TypeParams, &javadoc.TypeParamTag{Name: p.Name, Span: p.Span, TagSpan: p.TagSpan})
	}
	for _, t := range doc.Throws {
		c.Throws = append(c.Throws, &javadoc.ThrownTag{Name: t.Name, Exception: t.Exception, Span: t.Span, TagSpan: t.TagSpan})
	}
	if doc.Return != nil {
		c.Return = &javadoc.ReturnTag{Span: *doc.Return}
	}
	for _, r := range doc.Refs {
		ref, err := convertRef(r)
		if err != nil {
			return nil, err
		}
		c.Refs = append(c.Refs, ref)
	}
	return c, nil
}

func convertRef(r java.DocRefModel) (*javadoc.CrossRef, error) {
	ref := &javadoc.CrossRef{
		Span:         r.Span,
		Receiver:     r.Receiver,
		ReceiverSpan: r.ReceiverSpan,
		Name:         r.Name,
		NameSpan:     r.NameSpan,
	}
	if ref.NameSpan.Len() <= 0 {
		ref.NameSpan = r.Span
	}

	switch r.Kind {
	case "type":
		ref.Kind = javadoc.RefType
	case "field":
		ref.Kind = javadoc.RefField
	case "method":
		ref.Kind = javadoc.RefMethod
	case "constructor":
		ref.Kind = javadoc.RefConstructor
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRefKind, r.Kind)
	}

	switch r.Tag {
	case "", "see":
		ref.Tag = javadoc.TagSee
	case "link":
		ref.Tag = javadoc.TagLink
	case "linkplain":
		ref.Tag = javadoc.TagLinkPlain
	case "value":
		ref.Tag = javadoc.TagValue
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRefTag, r.Tag)
	}

	if r.Args != nil {
		ref.Args = make([]*javadoc.Argument, len(r.Args))
		for i, a := range r.Args {
			ref.Args[i] = &javadoc.Argument{Type: a.Type, Name: a.Name, Span: a.Span}
		}
	}
	return ref, nil
}

func classKind(k java.ClassKind) binding.TypeKind {
	switch k {
	case java.ClassKindInterface:
		return binding.KindInterface
	case java.ClassKindEnum:
		return binding.KindEnum
	case java.ClassKindAnnotation:
		return binding.KindAnnotation
	case java.ClassKindRecord:
		return binding.KindRecord
	}
	return binding.KindClass
}

func visibility(v java.Visibility, def binding.Visibility) binding.Visibility {
	switch v {
	case java.VisibilityPublic:
		return binding.VisibilityPublic
	case java.VisibilityProtected:
		return binding.VisibilityProtected
	case java.VisibilityPrivate:
		return binding.VisibilityPrivate
	case java.VisibilityPackage:
		return binding.VisibilityPackage
	}
	return def
}

// memberDefault is the visibility of a member declared without modifier.
func memberDefault(typ *binding.Type) binding.Visibility {
	if typ.IsInterface() {
		return binding.VisibilityPublic
	}
	return binding.VisibilityPackage
}

func namedTypes(names []string) []java.TypeModel {
	out := make([]java.TypeModel, len(names))
	for i, n := range names {
		out[i] = java.TypeModel{Name: n}
	}
	return out
}

// referencedNames lists the type names the declarations of cls mention.
func referencedNames(cls *java.ClassModel) []string {
	var names []string
	var add func(t java.TypeModel)
	add = func(t java.TypeModel) {
		names = append(names, t.Name)
		for _, a := range t.TypeArguments {
			add(a)
		}
	}
	if cls.SuperClass != "" {
		names = append(names, cls.SuperClass)
	}
	names = append(names, cls.Interfaces...)
	for _, tp := range cls.TypeParameters {
		for _, bound := range tp.Bounds {
			add(bound)
		}
	}
	for _, f := range cls.Fields {
		add(f.Type)
	}
	for _, m := range cls.Methods {
		add(m.ReturnType)
		for _, p := range m.Parameters {
			add(p.Type)
		}
		for _, ex := range m.Exceptions {
			add(ex.Type)
		}
		for _, tp := range m.TypeParameters {
			for _, bound := range tp.Bounds {
				add(bound)
			}
		}
	}
	return names
}
