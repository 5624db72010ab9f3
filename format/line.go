package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder writes one tab separated record per problem, for grep and cut:
//
//	path	start	end	severity	code	kind	message
type LineEncoder struct {
	w    io.Writer
	file *File
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(f *File) error {
	e.file = f
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	f := e.file
	if f == nil {
		return nil, nil
	}
	for _, p := range f.Problems {
		fmt.Fprintf(&sb, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			f.Path,
			p.Span.Start,
			p.Span.End,
			p.Severity,
			p.Kind.Code(),
			p.Kind,
			strings.ReplaceAll(p.Message, "\t", " "),
		)
	}
	return []byte(sb.String()), nil
}
