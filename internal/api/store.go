package api

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/xcursor/internal/inspect"
	"github.com/samcharles93/xcursor/pkg/xcursor"
)

type cursorRecord struct {
	Summary   inspect.Summary
	Document  *xcursor.Document
	CreatedAt time.Time
}

// CursorStore keeps decoded cursors in memory, keyed by id.
type CursorStore struct {
	mu      sync.Mutex
	cursors map[string]*cursorRecord
}

func NewCursorStore() *CursorStore {
	return &CursorStore{
		cursors: make(map[string]*cursorRecord),
	}
}

// Create assigns an id to summary, stores it with doc and returns the
// stored summary.
func (s *CursorStore) Create(summary inspect.Summary, doc *xcursor.Document, now time.Time) inspect.Summary {
	summary.ID = newCursorID()
	if summary.Name == "" {
		summary.Name = summary.ID
	}

	s.mu.Lock()
	s.cursors[summary.ID] = &cursorRecord{
		Summary:   summary,
		Document:  doc,
		CreatedAt: now,
	}
	s.mu.Unlock()

	return summary
}

func (s *CursorStore) Get(id string) (*cursorRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.cursors[id]
	return rec, ok
}

func (s *CursorStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cursors[id]; !ok {
		return false
	}
	delete(s.cursors, id)
	return true
}

// List returns every stored summary, oldest first.
func (s *CursorStore) List() []inspect.Summary {
	s.mu.Lock()
	recs := make([]*cursorRecord, 0, len(s.cursors))
	for _, rec := range s.cursors {
		recs = append(recs, rec)
	}
	s.mu.Unlock()

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].Summary.ID < recs[j].Summary.ID
		}
		return recs[i].CreatedAt.Before(recs[j].CreatedAt)
	})
	out := make([]inspect.Summary, len(recs))
	for i, rec := range recs {
		out[i] = rec.Summary
	}
	return out
}

func newCursorID() string {
	return "cur_" + uuid.NewString()
}
