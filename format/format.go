package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/source"
)

// File is the set of problems found in one input file.
type File struct {
	Path string
	// Lines maps problem spans to positions. A nil index reports every
	// problem on line 1.
	Lines    *source.LineIndex
	Problems []diag.Problem
}

func (f *File) position(offset int) source.Position {
	return f.Lines.Position(offset)
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(f *File) error
}

// Names lists the encoders accepted by ByName.
var Names = []string{"text", "json", "line"}

// ByName returns the encoder called name writing to w.
func ByName(name string, w io.Writer, color bool) (Encoder, error) {
	switch name {
	case "", "text":
		e := NewTextEncoder(w)
		e.Color = color
		return e, nil
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (expected one of %v)", name, Names)
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
