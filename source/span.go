// Package source holds byte spans and offset to line/column mapping.
package source

import "fmt"

// Span is a half-open byte range [Start, End) into a source file.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NoSpan is used where a node carries no position.
var NoSpan = Span{Start: -1, End: -1}

func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

func (s Span) Cover(other Span) Span {
	if !other.IsValid() {
		return s
	}
	if !s.IsValid() {
		return other
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
