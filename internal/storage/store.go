package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store is the persistent key/value adapter every collection sits on.
// The contract mirrors browser local storage: synchronous Get/Set/Remove
// on string values, missing keys are not an error, and callers are
// responsible for interpreting values (falling back to seed data when a
// value fails to parse).
//
// Values live in memory and are flushed to a single JSON file after
// every mutation. Persistence is best-effort: a failed flush is logged
// and the in-memory state stays authoritative for the process lifetime.
type Store struct {
	mu   sync.RWMutex
	path string // empty means memory-only (tests)
	log  *slog.Logger
	data map[string]string
}

const storeFile = "replenishhq.json"

// Open loads the store from dir, creating it on first run. A missing or
// unreadable file yields an empty store, never an error.
func Open(dir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		path: filepath.Join(dir, storeFile),
		log:  log,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("store file unreadable, starting empty", "path", s.path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn("store file corrupt, starting empty", "path", s.path, "error", err)
		s.data = make(map[string]string)
	}
	return s
}

// NewMemory returns a store with no backing file.
func NewMemory() *Store {
	return &Store{log: slog.Default(), data: make(map[string]string)}
}

// Get returns the value for key. The second return reports whether the
// key exists.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key and flushes.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.flushLocked()
}

// Remove deletes key. Removing a missing key is a no-op.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.flushLocked()
}

// Keys returns a snapshot of all present keys.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// flushLocked writes the whole map to disk via a temp file + rename so a
// crash mid-write never leaves a truncated store behind.
func (s *Store) flushLocked() {
	if s.path == "" {
		return
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.log.Error("store flush: marshal failed", "error", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.log.Error("store flush: write failed", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Error("store flush: rename failed", "path", s.path, "error", err)
	}
}
