package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Contak-cpu/inmob-sub001/config"
	"github.com/Contak-cpu/inmob-sub001/model"
)

// DocumentStore is an in-memory store for generated documents.
// In production, this should be replaced with a database.
type DocumentStore struct {
	documents    map[string]*model.Document
	mu           sync.RWMutex
	maxDocuments int // Maximum documents to keep, 0 = unlimited
}

var (
	globalStore *DocumentStore
	storeOnce   sync.Once
)

// InitDocumentStore initializes the global document store with configuration
func InitDocumentStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxDocuments := cfg.MaxDocuments
		if maxDocuments < 0 {
			maxDocuments = 0
		}
		globalStore = &DocumentStore{
			documents:    make(map[string]*model.Document),
			maxDocuments: maxDocuments,
		}
		slog.Info("document store initialized", "max_documents", maxDocuments)
	})
}

// GetDocumentStore returns the global document store
func GetDocumentStore() *DocumentStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = NewStore(500)
	}
	return globalStore
}

// NewStore creates a standalone store, mainly for embedding and tests.
// maxDocuments 0 means unlimited.
func NewStore(maxDocuments int) *DocumentStore {
	return &DocumentStore{
		documents:    make(map[string]*model.Document),
		maxDocuments: maxDocuments,
	}
}

// Save stores a copy of the document. The store never hands out its own
// pointers, so later writes (archive keys) cannot race with callers still
// holding a previously returned document.
func (s *DocumentStore) Save(doc *model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now()
	s.documents[doc.ID] = cloneDocument(doc)

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *DocumentStore) Get(id string) *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocument(s.documents[id])
}

func (s *DocumentStore) GetByOffice(office string) []*model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Document
	for _, d := range s.documents {
		if d.Office == office {
			result = append(result, cloneDocument(d))
		}
	}
	return result
}

func (s *DocumentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}

// SetArchiveKey records where the rendered text was archived.
func (s *DocumentStore) SetArchiveKey(id, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.documents[id]; ok {
		d.ArchiveKey = key
		d.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest documents if store exceeds maxDocuments
// Must be called with lock held
func (s *DocumentStore) cleanupIfNeeded() {
	if s.maxDocuments <= 0 {
		return // Unlimited
	}

	if len(s.documents) <= s.maxDocuments {
		return
	}

	// Sort documents by creation time
	documents := make([]*model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		documents = append(documents, d)
	}
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].CreatedAt.Before(documents[j].CreatedAt)
	})

	// Remove oldest documents
	removeCount := len(documents) - s.maxDocuments
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old document",
			"document_id", documents[i].ID,
			"created_at", documents[i].CreatedAt,
		)
		delete(s.documents, documents[i].ID)
	}
}

func cloneDocument(d *model.Document) *model.Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Quality != nil {
		q := *d.Quality
		c.Quality = &q
	}
	return &c
}

// Count returns the number of documents in the store
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
