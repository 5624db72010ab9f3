package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/doccheck/diag"
)

// TextEncoder writes one human readable line per problem:
//
//	path:line:col: severity JD1002 MissingParamTag: message
type TextEncoder struct {
	w     io.Writer
	file  *File
	Color bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(f *File) error {
	e.file = f
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	f := e.file
	if f == nil {
		return nil, nil
	}
	for _, p := range f.Problems {
		pos := f.position(p.Span.Start)
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s %s: %s\n",
			f.Path, pos.Line, pos.Column,
			e.severity(p.Severity),
			p.Kind.Code(), p.Kind, p.Message)
	}
	return []byte(sb.String()), nil
}

func (e *TextEncoder) severity(s diag.Severity) string {
	c := color.New(severityColor(s), color.Bold)
	if e.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s.String())
}

func severityColor(s diag.Severity) color.Attribute {
	switch s {
	case diag.SevError:
		return color.FgRed
	case diag.SevWarning:
		return color.FgYellow
	}
	return color.FgCyan
}
