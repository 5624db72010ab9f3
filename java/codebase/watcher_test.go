package codebase

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
)

type change struct {
	path string
	f    *FileInfo
}

func waitChange(t *testing.T, ch <-chan change) change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the watcher")
	}
	return change{}
}

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Calc.yaml", calcUnit)

	c := New(dir, config.Default())
	w := NewFileWatcher(c)
	w.SetInterval(10 * time.Millisecond)
	changes := make(chan change, 16)
	w.OnChange = func(path string, f *FileInfo) {
		changes <- change{path, f}
	}
	w.Start()
	defer w.Stop()

	got := waitChange(t, changes)
	if got.path != path || got.f == nil || len(got.f.Problems) != 2 {
		t.Fatalf("Expected initial check of %s, got %+v", path, got)
	}
	assertProblem(t, got.f, 0, diag.MissingReturnTag)
	assertProblem(t, got.f, 1, diag.MissingParamTag, "b")
	if got.f.Unit == nil || got.f.Lines == nil {
		t.Errorf("Expected the decoded unit and its line index, got %+v", got.f)
	}
	if c.GetFile(path) != got.f {
		t.Error("Expected the watcher to record the checked file")
	}

	// Document b as well; only the missing @return remains.
	fixed := []byte(calcUnit + "            - {name: b, span: {start: 50, end: 51}, tagSpan: {start: 7, end: 13}}\n")
	later := time.Now().Add(2 * time.Second)
	tmp := filepath.Join(dir, "Calc.tmp")
	if err := os.WriteFile(tmp, fixed, 0o644); err != nil {
		t.Fatalf("Failed to rewrite unit: %v", err)
	}
	if err := os.Chtimes(tmp, later, later); err != nil {
		t.Fatalf("Failed to touch unit: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Failed to replace unit: %v", err)
	}
	got = waitChange(t, changes)
	if got.f == nil || len(got.f.Problems) != 1 {
		t.Fatalf("Expected 1 problem after the edit, got %+v", got.f)
	}
	assertProblem(t, got.f, 0, diag.MissingReturnTag)

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove unit: %v", err)
	}
	got = waitChange(t, changes)
	if got.f != nil || c.GetFile(path) != nil {
		t.Error("Expected the removed file to be dropped")
	}
}

func assertProblem(t *testing.T, f *FileInfo, i int, kind diag.Kind, args ...string) {
	t.Helper()
	p := f.Problems[i]
	if p.Kind != kind {
		t.Errorf("Problem %d: expected %s, got %s", i, kind, p.Kind)
	}
	if len(args) > 0 && !reflect.DeepEqual(p.Args, args) {
		t.Errorf("Problem %d: expected arguments %v, got %v", i, args, p.Args)
	}
}
