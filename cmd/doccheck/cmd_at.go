package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/doccheck/java/codebase"
	"github.com/dhamidi/doccheck/java/javadoc"
	"github.com/dhamidi/doccheck/source"
)

func newAtCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "at <file> <offset|line:col>",
		Short: "Show the doc comment node starting at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath, args[0])
			if err != nil {
				return err
			}
			c := codebase.New(".", opts)
			f, err := c.ScanFile(args[0])
			if err != nil {
				return err
			}
			offset, err := parseOffset(args[1], f.Lines)
			if err != nil {
				return err
			}
			node, target := c.NodeAt(f.Path, offset)
			if node == nil {
				return fmt.Errorf("no doc comment node starts at %s", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", target, node.SourceSpan(), javadoc.Describe(node))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to doccheck.toml")

	return cmd
}

// parseOffset accepts a byte offset or a 1-based line:col position. The
// latter needs the unit's embedded source.
func parseOffset(s string, lines *source.LineIndex) (int, error) {
	line, col, ok := strings.Cut(s, ":")
	if !ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid offset %q", s)
		}
		return n, nil
	}
	if lines == nil {
		return 0, fmt.Errorf("position %q needs a unit with embedded source", s)
	}
	l, err1 := strconv.Atoi(line)
	c, err2 := strconv.Atoi(col)
	if err1 != nil || err2 != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	off := lines.Offset(source.Position{Line: l, Column: c})
	if off < 0 {
		return 0, fmt.Errorf("position %q is outside the source", s)
	}
	return off, nil
}
