package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/smartseq/internal/engine"
)

// Document is an opened input together with its engine document.
type Document struct {
	// Path is the absolute file path, empty for stdin.
	Path string

	// Name is the display name.
	Name string

	// Doc holds the text, its edits and its source tracking.
	Doc *engine.Document
}

// DocumentManager owns the documents opened by an Application, in open
// order.
type DocumentManager struct {
	mu        sync.RWMutex
	documents map[string]*Document // key -> document
	order     []string
	opts      []engine.Option
}

// NewDocumentManager creates a manager that passes opts to every
// engine.Document it creates.
func NewDocumentManager(opts ...engine.Option) *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
		opts:      opts,
	}
}

// Open opens a document from a file. Opening the same file twice returns
// the existing document.
func (dm *DocumentManager) Open(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	dm.mu.Lock()
	defer dm.mu.Unlock()

	if doc, exists := dm.documents[absPath]; exists {
		return doc, nil
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	defer f.Close()

	d, err := engine.NewFromReader(filepath.Base(absPath), f, dm.opts...)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	doc := &Document{Path: absPath, Name: filepath.Base(absPath), Doc: d}
	dm.add(absPath, doc)
	return doc, nil
}

// OpenReader reads a document without a file path, such as stdin.
func (dm *DocumentManager) OpenReader(name string, r io.Reader) (*Document, error) {
	d, err := engine.NewFromReader(name, r, dm.opts...)
	if err != nil {
		return nil, NewOperationError("read", name, err)
	}

	dm.mu.Lock()
	defer dm.mu.Unlock()

	key := name
	for n := 2; dm.documents[key] != nil; n++ {
		key = fmt.Sprintf("%s-%d", name, n)
	}
	doc := &Document{Name: key, Doc: d}
	dm.add(key, doc)
	return doc, nil
}

func (dm *DocumentManager) add(key string, doc *Document) {
	dm.documents[key] = doc
	dm.order = append(dm.order, key)
}

// Close forgets a document by key (absolute path or reader name).
func (dm *DocumentManager) Close(key string) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if _, exists := dm.documents[key]; !exists {
		return ErrDocumentNotFound
	}
	delete(dm.documents, key)

	for i, k := range dm.order {
		if k == key {
			dm.order = append(dm.order[:i], dm.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a document by key.
func (dm *DocumentManager) Get(key string) (*Document, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	doc, exists := dm.documents[key]
	return doc, exists
}

// All returns all open documents in open order.
func (dm *DocumentManager) All() []*Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	docs := make([]*Document, 0, len(dm.order))
	for _, key := range dm.order {
		docs = append(docs, dm.documents[key])
	}
	return docs
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.documents)
}
