package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/format"
	"github.com/dhamidi/doccheck/java/codebase"
)

type checkOptions struct {
	format  string
	config  string
	jobs    int
	watch   bool
	noColor bool
}

func newCheckCmd() *cobra.Command {
	var o checkOptions

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check the doc comments of unit files and directories",
		Long: `Check loads .json, .yaml and .yml unit files, checks every doc comment
they describe and prints the problems found. Directories are searched
recursively. The exit status is 1 when any problem has error severity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, o)
		},
	}

	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format (text, json, line)")
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "path to doccheck.toml (default: discovered from the first path)")
	cmd.Flags().IntVarP(&o.jobs, "jobs", "j", 0, "number of files checked in parallel (default: GOMAXPROCS)")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "re-check a directory whenever its unit files change")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "disable colored output")

	return cmd
}

func loadOptions(path, start string) (config.Options, error) {
	if path != "" {
		return config.Load(path)
	}
	info, err := os.Stat(start)
	if err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}
	return config.Discover(start)
}

func runCheck(ctx context.Context, stdout, stderr io.Writer, args []string, o checkOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := loadOptions(o.config, args[0])
	if err != nil {
		return err
	}
	enc, err := format.ByName(o.format, stdout, !o.noColor && !color.NoColor)
	if err != nil {
		return err
	}

	if o.watch {
		if len(args) != 1 {
			return fmt.Errorf("--watch takes exactly one directory")
		}
		return watch(ctx, codebase.New(args[0], opts), enc, stderr)
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := codebase.New(arg, opts).UnitFiles()
		if err != nil {
			return fmt.Errorf("list %s: %w", arg, err)
		}
		paths = append(paths, found...)
	}

	files, err := codebase.New(".", opts).CheckAll(ctx, paths, o.jobs)
	if files == nil && err != nil {
		return err
	}
	failed := false
	for _, f := range files {
		if f.HasErrors() {
			failed = true
		}
		if err := report(enc, stderr, f); err != nil {
			return err
		}
	}
	if failed {
		return errProblems
	}
	return nil
}

func report(enc format.Encoder, stderr io.Writer, f *codebase.FileInfo) error {
	if f.Err != nil {
		fmt.Fprintf(stderr, "%v\n", f.Err)
		return nil
	}
	return enc.Encode(&format.File{
		Path:     codebase.DiagnosticsPath(f),
		Lines:    f.Lines,
		Problems: f.Problems,
	})
}

func watch(ctx context.Context, c *codebase.Codebase, enc format.Encoder, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w := codebase.NewFileWatcher(c)
	w.OnChange = func(path string, f *codebase.FileInfo) {
		if f == nil {
			fmt.Fprintf(stderr, "removed %s\n", path)
			return
		}
		if err := report(enc, stderr, f); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
		}
	}
	w.Start()
	<-ctx.Done()
	w.Stop()
	return nil
}
