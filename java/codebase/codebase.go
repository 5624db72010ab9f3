package codebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/javadoc"
	"github.com/dhamidi/doccheck/java/lookup"
	"github.com/dhamidi/doccheck/source"
)

var log = commonlog.GetLogger("doccheck.codebase")

// Codebase is the set of loaded unit files under a root directory together
// with the problems found in each.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	opts    config.Options
	files   map[string]*FileInfo
}

// FileInfo is the result of loading and checking one unit file.
type FileInfo struct {
	Path    string
	Content []byte
	Unit    *java.Unit
	// Lines indexes the unit's embedded source; nil when it has none.
	Lines    *source.LineIndex
	Targets  []*lookup.Target
	Problems []diag.Problem
	// Err is set when the file could not be decoded or built.
	Err error
}

// HasErrors reports whether the file failed to load or has error-severity
// problems.
func (f *FileInfo) HasErrors() bool {
	if f.Err != nil {
		return true
	}
	for _, p := range f.Problems {
		if p.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

func New(rootDir string, opts config.Options) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		opts:    opts,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Options() config.Options {
	return c.opts
}

// UnitFiles lists the unit files below the root directory, skipping hidden
// directories.
func (c *Codebase) UnitFiles() ([]string, error) {
	var paths []string
	err := filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if java.IsUnitFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func (c *Codebase) ScanAll(ctx context.Context, jobs int) ([]*FileInfo, error) {
	paths, err := c.UnitFiles()
	if err != nil {
		return nil, err
	}
	return c.CheckAll(ctx, paths, jobs)
}

// CheckAll loads and checks paths on at most jobs goroutines (GOMAXPROCS when
// jobs < 1). Every unit gets its own symbol table, so units never share
// bindings. The results are in the order of paths. A file that fails to
// load does not stop the others; it carries its error and all such errors
// are returned joined. When ctx is done before every file was checked,
// CheckAll returns nil results and the context error.
func (c *Codebase) CheckAll(ctx context.Context, paths []string, jobs int) ([]*FileInfo, error) {
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*FileInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], _ = c.ScanFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var errs []error
	for _, f := range results {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return results, errors.Join(errs...)
}

// ScanFile reads path from disk and checks it.
func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		f := &FileInfo{Path: path, Err: fmt.Errorf("read unit: %w", err)}
		c.store(f)
		return f, f.Err
	}
	f := c.UpdateFile(path, content)
	return f, f.Err
}

// UpdateFile checks content as the new version of path and records the
// result.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	f := c.analyze(path, content)
	c.store(f)
	return f
}

func (c *Codebase) analyze(path string, content []byte) *FileInfo {
	f := &FileInfo{Path: path, Content: content}
	unit, err := java.Decode(filepath.Ext(path), content)
	if err != nil {
		f.Err = fmt.Errorf("%s: %w", path, err)
		return f
	}
	if unit.File == "" {
		unit.File = path
	}
	f.Unit = unit
	if unit.Source != "" {
		f.Lines = source.NewLineIndex([]byte(unit.Source))
	}
	_, targets, err := lookup.FromUnit(unit, c.opts)
	if err != nil {
		f.Err = fmt.Errorf("%s: %w", path, err)
		return f
	}
	f.Targets = targets
	bag := diag.NewBag()
	for _, t := range targets {
		t.Check(bag)
	}
	bag.Sort()
	f.Problems = bag.Items()
	log.Debugf("checked %s: %d targets, %d problems", path, len(targets), bag.Len())
	return f
}

func (c *Codebase) store(f *FileInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[f.Path] = f
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the recorded files sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// NodeAt returns the doc node starting at offset in path and the declaration
// whose comment contains it.
func (c *Codebase) NodeAt(path string, offset int) (javadoc.Node, *lookup.Target) {
	f := c.GetFile(path)
	if f == nil {
		return nil, nil
	}
	for _, t := range f.Targets {
		if n := t.Comment.NodeAt(offset); n != nil {
			return n, t
		}
	}
	return nil, nil
}
