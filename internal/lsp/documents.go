package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documentStore tracks the text of open documents by URI.
type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]string
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[protocol.DocumentUri]string)}
}

func (s *documentStore) set(uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

func (s *documentStore) get(uri protocol.DocumentUri) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

func (s *documentStore) remove(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// applyChanges applies content change events in order. Whole-document
// events replace the text; ranged events splice it.
func applyChanges(text string, changes []any) string {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := c.Range.IndexesIn(text)
			text = text[:start] + c.Text + text[end:]
		}
	}
	return text
}
