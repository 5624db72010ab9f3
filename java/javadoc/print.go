package javadoc

import (
	"fmt"
	"strings"
)

// String renders the tag structure of c as a doc comment.
func (c *Comment) String() string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, p := range c.Params {
		sb.WriteString(" * @param " + p.Name + "\n")
	}
	for _, p := range c.TypeParams {
		sb.WriteString(" * @param <" + p.Name + ">\n")
	}
	if c.Return != nil {
		sb.WriteString(" * @return\n")
	}
	for _, t := range c.Throws {
		tag := "@throws"
		if t.Exception {
			tag = "@exception"
		}
		sb.WriteString(" * " + tag + " " + t.Name + "\n")
	}
	for _, ref := range c.Refs {
		sb.WriteString(" * " + formatRef(ref) + "\n")
	}
	sb.WriteString(" */")
	return sb.String()
}

func formatRef(ref *CrossRef) string {
	target := ref.String()
	switch ref.Tag {
	case TagLink:
		return "{@link " + target + "}"
	case TagLinkPlain:
		return "{@linkplain " + target + "}"
	case TagValue:
		return "{@value " + target + "}"
	}
	return "@see " + target
}

// String renders the reference as written, e.g. "List#add(int, E)".
func (r *CrossRef) String() string {
	if r.Kind == RefType {
		return r.Name
	}
	var sb strings.Builder
	sb.WriteString(r.Receiver)
	sb.WriteByte('#')
	sb.WriteString(r.Name)
	if r.Kind == RefMethod || r.Kind == RefConstructor {
		sb.WriteByte('(')
		for i, a := range r.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.Type)
			if a.Name != "" {
				sb.WriteString(" " + a.Name)
			}
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// Describe renders a node and, once the comment was checked, what it
// resolved to.
func Describe(n Node) string {
	switch n := n.(type) {
	case *ParamTag:
		if n.Binding.IsValid() {
			return fmt.Sprintf("@param %s: parameter %s %s", n.Name, n.Binding.Type, n.Binding.Name)
		}
		return fmt.Sprintf("@param %s: unresolved", n.Name)
	case *TypeParamTag:
		if n.Binding.IsValid() {
			return fmt.Sprintf("@param <%s>: type variable %s", n.Name, n.Binding)
		}
		return fmt.Sprintf("@param <%s>: unresolved", n.Name)
	case *ThrownTag:
		if n.Type.IsValid() {
			return fmt.Sprintf("@throws %s: %s", n.Name, n.Type)
		}
		return fmt.Sprintf("@throws %s: unresolved", n.Name)
	case *ReturnTag:
		return "@return"
	case *CrossRef:
		return formatRef(n) + ": " + describeTarget(n)
	case *Argument:
		if n.Resolved.IsValid() {
			return fmt.Sprintf("argument %s: %s", n.Type, n.Resolved)
		}
		return fmt.Sprintf("argument %s: unresolved", n.Type)
	}
	return ""
}

func describeTarget(ref *CrossRef) string {
	switch {
	case ref.Method.IsValid():
		return fmt.Sprintf("%s %s.%s", ref.Kind, ref.Method.Declaring, ref.Method)
	case ref.Field.IsValid():
		return fmt.Sprintf("field %s.%s", ref.Field.Declaring, ref.Field.Name)
	case ref.Kind == RefType && ref.Type.IsValid():
		return "type " + ref.Type.String()
	}
	return "unresolved"
}
