package diag

import "sort"

// Bag collects problems in report order.
type Bag struct {
	items []Problem
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Report(p Problem) {
	b.items = append(b.items, p)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected problems. The slice must not be modified.
func (b *Bag) Items() []Problem {
	return b.items
}

// Count returns how many collected problems have the given kind.
func (b *Bag) Count(kind Kind) int {
	n := 0
	for _, p := range b.items {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the kinds of the collected problems in report order.
func (b *Bag) Kinds() []Kind {
	kinds := make([]Kind, len(b.items))
	for i, p := range b.items {
		kinds[i] = p.Kind
	}
	return kinds
}

func (b *Bag) HasErrors() bool {
	for _, p := range b.items {
		if p.Severity >= SevError {
			return true
		}
	}
	return false
}

// Sort orders problems by start, end, severity (desc) and kind.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		pi, pj := b.items[i], b.items[j]
		if pi.Span.Start != pj.Span.Start {
			return pi.Span.Start < pj.Span.Start
		}
		if pi.Span.End != pj.Span.End {
			return pi.Span.End < pj.Span.End
		}
		if pi.Severity != pj.Severity {
			return pi.Severity > pj.Severity
		}
		return pi.Kind < pj.Kind
	})
}
