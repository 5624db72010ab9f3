package codebase

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/doccheck/config"
	"github.com/dhamidi/doccheck/diag"
	"github.com/dhamidi/doccheck/java"
	"github.com/dhamidi/doccheck/java/javadoc"
	"github.com/dhamidi/doccheck/source"
)

const lsName = "doccheck"

// LSPServer checks unit files as they are opened, edited and saved, and
// publishes the problems found as diagnostics. Problems are published for
// the Java file a unit names, since that is what their spans point into;
// load errors are published for the unit file itself.
type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string

	mu sync.Mutex
	// owners maps the document a unit's diagnostics are published on to
	// the unit file.
	owners map[string]string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		owners:  make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	opts, err := config.Discover(rootDir)
	if err != nil {
		log.Warningf("using default options: %s", err)
		opts = config.Default()
	}
	ls.codebase = New(rootDir, opts)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	files, err := ls.codebase.ScanAll(context.Background(), 0)
	if err != nil {
		log.Warningf("initial scan: %s", err)
	}
	for _, f := range files {
		if f != nil {
			ls.publish(ctx, f)
		}
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, ok := unitPath(params.TextDocument.URI)
	if !ok {
		return nil
	}
	ls.publish(ctx, ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text)))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, ok := unitPath(params.TextDocument.URI)
	if !ok || len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, ls.codebase.UpdateFile(path, []byte(textChange.Text)))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, ok := unitPath(params.TextDocument.URI)
	if !ok {
		return nil
	}
	if params.Text != nil {
		ls.publish(ctx, ls.codebase.UpdateFile(path, []byte(*params.Text)))
		return nil
	}
	f, err := ls.codebase.ScanFile(path)
	if err != nil {
		log.Warningf("%s", err)
	}
	ls.publish(ctx, f)
	return nil
}

// textDocumentHover describes the doc node starting at the hovered position
// of a Java file some unit was built from.
func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	ls.mu.Lock()
	owner, ok := ls.owners[doc]
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}
	f := ls.codebase.GetFile(owner)
	if f == nil || f.Lines == nil {
		return nil, nil
	}
	offset := f.Lines.Offset(source.Position{
		Line:   int(params.Position.Line) + 1,
		Column: int(params.Position.Character) + 1,
	})
	node, target := ls.codebase.NodeAt(owner, offset)
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: target.String() + "\n" + javadoc.Describe(node),
		},
	}, nil
}

func (ls *LSPServer) publish(ctx *glsp.Context, f *FileInfo) {
	if f == nil {
		return
	}
	doc := DiagnosticsPath(f)
	ls.mu.Lock()
	ls.owners[doc] = f.Path
	ls.mu.Unlock()

	diagnostics := []protocol.Diagnostic{}
	if f.Err != nil {
		sev := protocol.DiagnosticSeverityError
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Severity: &sev,
			Source:   strPtr(lsName),
			Message:  f.Err.Error(),
		})
	}
	for _, p := range f.Problems {
		diagnostics = append(diagnostics, toDiagnostic(f.Lines, p))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(doc),
		Diagnostics: diagnostics,
	})
}

// DiagnosticsPath is the file f's problems refer to: the Java file named by
// its unit, relative to the unit file, or the unit file itself.
func DiagnosticsPath(f *FileInfo) string {
	if f.Err != nil || f.Unit == nil || f.Unit.File == "" || f.Unit.File == f.Path {
		return f.Path
	}
	if filepath.IsAbs(f.Unit.File) {
		return f.Unit.File
	}
	return filepath.Join(filepath.Dir(f.Path), f.Unit.File)
}

func toDiagnostic(lines *source.LineIndex, p diag.Problem) protocol.Diagnostic {
	sev := toProtocolSeverity(p.Severity)
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: toProtocolPosition(lines.Position(p.Span.Start)),
			End:   toProtocolPosition(lines.Position(p.Span.End)),
		},
		Severity: &sev,
		Code:     &protocol.IntegerOrString{Value: p.Kind.Code()},
		Source:   strPtr(lsName),
		Message:  p.Message,
	}
}

func toProtocolPosition(pos source.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(pos.Column - 1),
	}
}

func toProtocolSeverity(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

func unitPath(uri string) (string, bool) {
	path, err := uriToPath(uri)
	if err != nil || !java.IsUnitFile(path) {
		return "", false
	}
	return path, true
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
