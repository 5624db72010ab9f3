package javadoc

// NodeAt returns the tag node that starts at offset, or nil.
//
// Nodes are searched in a fixed order: @param tags, invalid @param tags,
// @param <T> tags, @throws tags, then references. Arguments of method and
// constructor references are searched only when the reference resolved.
func (c *Comment) NodeAt(offset int) Node {
	if c == nil {
		return nil
	}
	for _, p := range c.Params {
		if p.Span.Start == offset {
			return p
		}
	}
	for _, p := range c.InvalidParams {
		if p.Span.Start == offset {
			return p
		}
	}
	for _, p := range c.TypeParams {
		if p.Span.Start == offset {
			return p
		}
	}
	for _, t := range c.Throws {
		if t.Span.Start == offset {
			return t
		}
	}
	for _, ref := range c.Refs {
		if ref.Span.Start == offset {
			return ref
		}
		if ref.Kind != RefMethod && ref.Kind != RefConstructor {
			continue
		}
		if !ref.Method.IsValid() {
			continue
		}
		for _, arg := range ref.Args {
			if arg.Span.Start == offset {
				return arg
			}
		}
	}
	return nil
}

// Walk calls fn for every tag node of c in NodeAt order, including all
// reference arguments.
func (c *Comment) Walk(fn func(Node)) {
	if c == nil {
		return
	}
	for _, p := range c.Params {
		fn(p)
	}
	for _, p := range c.InvalidParams {
		fn(p)
	}
	for _, p := range c.TypeParams {
		fn(p)
	}
	for _, t := range c.Throws {
		fn(t)
	}
	if c.Return != nil {
		fn(c.Return)
	}
	for _, ref := range c.Refs {
		fn(ref)
		for _, arg := range ref.Args {
			fn(arg)
		}
	}
}
