package lsp

import (
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const serverName = "scss-lite"

// Server is a language server that publishes lint diagnostics for open
// stylesheets on every edit.
type Server struct {
	version   string
	documents *documentStore
	handler   protocol.Handler
	glsp      *server.Server
}

// NewServer creates a new language server reporting version to clients.
func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		documents: newDocumentStore(),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidSave:   s.didSave,
		TextDocumentDidClose:  s.didClose,
	}
	s.glsp = server.NewServer(&s.handler, serverName, false)

	return s
}

// RunStdio serves the protocol over stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	return s.glsp.RunStdio()
}

func (s *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	openClose := true
	capabilities.TextDocumentSync = protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debug("Document opened: %s (version: %d)", uri, params.TextDocument.Version)

	s.documents.set(uri, params.TextDocument.Text)
	s.publish(context, uri)
	return nil
}

func (s *Server) didChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debug("Document changed: %s (version: %d, changes: %d)", uri, params.TextDocument.Version, len(params.ContentChanges))

	text, _ := s.documents.get(uri)
	s.documents.set(uri, applyChanges(text, params.ContentChanges))
	s.publish(context, uri)
	return nil
}

func (s *Server) didSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		s.documents.set(uri, *params.Text)
	}
	s.publish(context, uri)
	return nil
}

func (s *Server) didClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debug("Document closed: %s", uri)

	s.documents.remove(uri)
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publish lints the stored text of uri and pushes the diagnostics.
func (s *Server) publish(context *glsp.Context, uri protocol.DocumentUri) {
	text, ok := s.documents.get(uri)
	if !ok {
		return
	}

	diagnostics := Diagnostics(text)
	log.Debug("Publishing %d diagnostic(s) for %s", len(diagnostics), uri)
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
