// Package memory is a map-backed store.Store used in tests.
package memory

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acidpbl/homequest/internal/store"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]interface{} // collection -> id -> fields
}

func New() *Store {
	return &Store{data: make(map[string]map[string]map[string]interface{})}
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.data[collection][id]
	if !ok {
		return store.Document{}, store.ErrNotFound
	}
	return store.Document{ID: id, Data: cloneFields(fields)}, nil
}

func (s *Store) Query(ctx context.Context, collection string, preds []store.Predicate) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Document
	for id, fields := range s.data[collection] {
		if matchesAll(fields, preds) {
			out = append(out, store.Document{ID: id, Data: cloneFields(fields)})
		}
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]interface{})
	}
	s.data[collection][id] = cloneFields(data)
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.data[collection][id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[collection], id)
	return nil
}

func matchesAll(fields map[string]interface{}, preds []store.Predicate) bool {
	for _, p := range preds {
		if !matches(fields, p) {
			return false
		}
	}
	return true
}

func matches(fields map[string]interface{}, p store.Predicate) bool {
	switch p.Op {
	case store.OpEqual:
		return valueEqual(fields[p.Field], p.Value)
	case store.OpArrayContains:
		rv := reflect.ValueOf(fields[p.Field])
		if rv.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if valueEqual(rv.Index(i).Interface(), p.Value) {
				return true
			}
		}
	}
	return false
}

// valueEqual compares loosely across the representations the drivers produce:
// times compare by instant, numbers by value regardless of width.
func valueEqual(a, b interface{}) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
		return false
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func cloneFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
