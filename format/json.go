package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes the problems of a file as one indented JSON document.
type JSONEncoder struct {
	w    io.Writer
	file *File
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(f *File) error {
	e.file = f
	if err := write(e.w, e); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

type jsonOutput struct {
	File        string           `json:"file"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Count       int              `json:"count"`
}

type jsonDiagnostic struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	Args     []string     `json:"args,omitempty"`
	Location jsonLocation `json:"location"`
}

type jsonLocation struct {
	StartByte int `json:"start_byte"`
	EndByte   int `json:"end_byte"`
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildOutput(), "", "  ")
}

func (e *JSONEncoder) buildOutput() jsonOutput {
	out := jsonOutput{Diagnostics: []jsonDiagnostic{}}
	f := e.file
	if f == nil {
		return out
	}
	out.File = f.Path
	for _, p := range f.Problems {
		start, end := f.position(p.Span.Start), f.position(p.Span.End)
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			Severity: p.Severity.String(),
			Code:     p.Kind.Code(),
			Kind:     p.Kind.String(),
			Message:  p.Message,
			Args:     p.Args,
			Location: jsonLocation{
				StartByte: p.Span.Start,
				EndByte:   p.Span.End,
				StartLine: start.Line,
				StartCol:  start.Column,
				EndLine:   end.Line,
				EndCol:    end.Column,
			},
		})
	}
	out.Count = len(out.Diagnostics)
	return out
}
