package lsp

import (
	"testing"

	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type published struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func recordingContext(out *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*out = append(*out, published{method: method, params: params.(protocol.PublishDiagnosticsParams)})
		},
	}
}

func TestDiagnostics(t *testing.T) {
	text := ".a {\n  color:\n}\n  }  \n.é {"
	diags := Diagnostics(text)
	require.Len(t, diags, 3)

	assert.Equal(t, scss.MsgPropertyMissingValue, diags[0].Message)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 8},
	}, diags[0].Range)
	require.NotNil(t, diags[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	require.NotNil(t, diags[0].Source)
	assert.Equal(t, "scss-lite", *diags[0].Source)

	assert.Equal(t, scss.MsgUnmatchedClosingBrace, diags[1].Message)
	assert.Equal(t, protocol.Position{Line: 3, Character: 2}, diags[1].Range.Start)
	assert.Equal(t, protocol.Position{Line: 3, Character: 3}, diags[1].Range.End)

	assert.Equal(t, scss.MsgUnclosedBlock, diags[2].Message)
	assert.Equal(t, protocol.Position{Line: 4, Character: 4}, diags[2].Range.End)
}

func TestDiagnostics_Clean(t *testing.T) {
	assert.Empty(t, Diagnostics("$c: red;\n.a {\ncolor: $c;\n}"))
}

func TestServer_Lifecycle(t *testing.T) {
	s := NewServer("1.2.3")
	var notes []published
	ctx := recordingContext(&notes)
	uri := "file:///work/a.scss"

	require.NoError(t, s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "scss", Version: 1, Text: ".a {\n"},
	}))
	require.Len(t, notes, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, notes[0].method)
	assert.Equal(t, uri, notes[0].params.URI)
	require.Len(t, notes[0].params.Diagnostics, 1)
	assert.Equal(t, scss.MsgUnclosedBlock, notes[0].params.Diagnostics[0].Message)

	require.NoError(t, s.didChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: ".a {\n  color: red;\n}\n"},
		},
	}))
	require.Len(t, notes, 2)
	assert.Empty(t, notes[1].params.Diagnostics)

	require.NoError(t, s.didClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, notes, 3)
	assert.Empty(t, notes[2].params.Diagnostics)

	_, ok := s.documents.get(uri)
	assert.False(t, ok)
}

func TestServer_Initialize(t *testing.T) {
	s := NewServer("1.2.3")
	result, err := s.initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res, ok := result.(protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, res.ServerInfo)
	assert.Equal(t, "scss-lite", res.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *res.ServerInfo.Version)

	syncOpts, ok := res.Capabilities.TextDocumentSync.(protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *syncOpts.Change)
}

func TestApplyChanges(t *testing.T) {
	text := applyChanges("old", []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "a {\n}"},
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			},
			Text: ".b",
		},
	})
	assert.Equal(t, ".b {\n}", text)
}
