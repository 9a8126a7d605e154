package codebase

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/pyqual/format"
	"github.com/dhamidi/pyqual/python"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "pyqual"

// Commands understood by workspace/executeCommand. Both take the document
// URI and a 0-based line as arguments and return the resulting string.
const (
	CommandCopyQualifiedPath   = "pyqual.copyQualifiedPath"
	CommandCopyImportStatement = "pyqual.copyImportStatement"
)

const notPythonMessage = "Only works on Python files."

var log = commonlog.GetLogger("pyqual.lsp")

type LSPServer struct {
	codebase *Codebase
	watcher  *FileWatcher
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string, debug bool) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		TextDocumentHover:       ls.textDocumentHover,
		TextDocumentCodeAction:  ls.textDocumentCodeAction,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)

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
	if abs, err := filepath.Abs(rootDir); err == nil {
		rootDir = abs
	}

	ls.codebase = New(rootDir)
	log.Infof("workspace root: %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{CommandCopyQualifiedPath, CommandCopyImportStatement},
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
	watcher, err := NewFileWatcher(ls.codebase)
	if err != nil {
		log.Warningf("file watching disabled: %s", err)
		return nil
	}
	if err := watcher.Start(); err != nil {
		log.Warningf("file watching disabled: %s", err)
		watcher.Stop()
		return nil
	}
	ls.watcher = watcher
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		if err := ls.watcher.Stop(); err != nil {
			log.Warningf("stop watcher: %s", err)
		}
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		log.Warningf("didOpen: %s", err)
		return nil
	}
	ls.codebase.OpenFile(path, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		log.Warningf("didChange: %s", err)
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.OpenFile(path, textChange.Text)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.CloseFile(path)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.OpenFile(path, *params.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil || !python.IsPythonFile(path) {
		return nil, nil
	}

	el, ok := ls.codebase.ElementAt(path, int(params.Position.Line))
	if !ok || el.IsZero() {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverMarkdown(el),
		},
	}, nil
}

func hoverMarkdown(el python.Element) string {
	return fmt.Sprintf("`%s`\n\n```python\n%s\n```", format.QualifiedPath(el), format.ImportStatement(el))
}

func (ls *LSPServer) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil || !python.IsPythonFile(path) {
		return nil, nil
	}

	line := params.Range.Start.Line
	kind := protocol.CodeActionKindSource
	args := []any{params.TextDocument.URI, line}

	return []protocol.CodeAction{
		{
			Title: "Copy qualified path",
			Kind:  &kind,
			Command: &protocol.Command{
				Title:     "Copy qualified path",
				Command:   CommandCopyQualifiedPath,
				Arguments: args,
			},
		},
		{
			Title: "Copy import statement",
			Kind:  &kind,
			Command: &protocol.Command{
				Title:     "Copy import statement",
				Command:   CommandCopyImportStatement,
				Arguments: args,
			},
		},
	}, nil
}

func (ls *LSPServer) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	var render func(python.Element) string
	switch params.Command {
	case CommandCopyQualifiedPath:
		render = format.QualifiedPath
	case CommandCopyImportStatement:
		render = format.ImportStatement
	default:
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}

	path, line, err := commandArgs(params.Arguments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", params.Command, err)
	}

	if !python.IsPythonFile(path) {
		showMessage(ctx, protocol.MessageTypeInfo, notPythonMessage)
		return nil, nil
	}

	el, ok := ls.codebase.ElementAt(path, line)
	if !ok {
		log.Warningf("%s: cannot read %s", params.Command, path)
		showMessage(ctx, protocol.MessageTypeError, "Cannot read "+path)
		return nil, nil
	}

	result := render(el)
	log.Debugf("%s %s:%d -> %s", params.Command, path, line, result)
	showMessage(ctx, protocol.MessageTypeInfo, "Copied: "+result)
	return result, nil
}

// commandArgs decodes the [uri, line] arguments of a pyqual command. JSON
// numbers arrive as float64.
func commandArgs(args []any) (string, int, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("expected 2 arguments (uri, line), got %d", len(args))
	}
	uri, ok := args[0].(string)
	if !ok {
		return "", 0, fmt.Errorf("uri argument is %T, not a string", args[0])
	}
	var line int
	switch v := args[1].(type) {
	case float64:
		line = int(v)
	case int:
		line = v
	case protocol.UInteger:
		line = int(v)
	default:
		return "", 0, fmt.Errorf("line argument is %T, not a number", args[1])
	}
	path, err := uriToPath(uri)
	if err != nil {
		return "", 0, fmt.Errorf("parse uri %q: %w", uri, err)
	}
	return path, line, nil
}

func showMessage(ctx *glsp.Context, kind protocol.MessageType, message string) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerWindowShowMessage, protocol.ShowMessageParams{
		Type:    kind,
		Message: message,
	})
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

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
