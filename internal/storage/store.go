// Package storage provides the synchronous key-value string store the rest
// of the application persists through. Keys are namespaced per user as
// "<userId>:<resource>" so no component can read or write across users.
//
// There is no cross-instance coordination: two stores opened on the same
// file (or two sessions sharing one store) race last-write-wins.
package storage

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned when a write would push the store past its
// byte quota. Writes that hit it are rejected, never silently dropped.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// DefaultQuotaBytes mirrors the practical ceiling of browser origin storage.
const DefaultQuotaBytes = 5 << 20

// Store is a synchronous key-value string store. Get reports whether the
// key was present.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// UserKey builds the namespaced storage key for a user-scoped resource.
func UserKey(userID, resource string) string {
	return userID + ":" + resource
}

// MemoryStore is a map-backed Store with quota enforcement. Safe for
// concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string]string
	quota int64
	used  int64
}

// NewMemoryStore returns an empty in-memory store with the default quota.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithQuota(DefaultQuotaBytes)
}

// NewMemoryStoreWithQuota returns an in-memory store capped at quota bytes
// of combined key and value length.
func NewMemoryStoreWithQuota(quota int64) *MemoryStore {
	return &MemoryStore{data: make(map[string]string), quota: quota}
}

// Get returns the value for key if present.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set writes value under key, rejecting writes that would exceed the quota.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.used + int64(len(key)+len(value))
	if old, ok := s.data[key]; ok {
		next -= int64(len(key) + len(old))
	}
	if next > s.quota {
		return ErrQuotaExceeded
	}

	s.data[key] = value
	s.used = next
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.data[key]; ok {
		s.used -= int64(len(key) + len(old))
		delete(s.data, key)
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
