package storage

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by tests and local tooling.
// Documents are kept in insertion order per collection.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]bson.M)}
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid := primitive.NewObjectID()
	m["_id"] = oid

	s.mu.Lock()
	s.data[collection] = append(s.data[collection], m)
	s.mu.Unlock()

	return oid.Hex(), nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range s.data[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if matches(doc, filter) {
			// Shallow copy so callers can stringify _id without
			// mutating the stored document.
			cp := bson.M{}
			for k, v := range doc {
				cp[k] = v
			}
			docs = append(docs, cp)
		}
	}
	return docs, nil
}

func (s *MemoryStore) ListCollections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Count reports how many documents a collection holds.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[collection])
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
