// Package session tracks the most recent code artifact produced for each
// user, the default source for the improve workflow.
//
// The store is the single owner of the "last artifact per user" mapping.
// Other components read entries via Get and replace them via Put; no other
// mutation exists. State lives for the process lifetime only — there is no
// expiry and no persistence across restarts.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sharebot0/sharebot/internal/artifact"
)

// Entry is one user's most recent artifact.
type Entry struct {
	UserID    string
	Artifact  *artifact.Artifact
	UpdatedAt time.Time
}

// Store is a concurrency-safe mapping from user identity to last artifact.
//
// Concurrent requests from the same user racing to read-then-overwrite their
// entry interleave with last-writer-wins semantics. That weak consistency is
// accepted: an improve result simply becomes the newest "last code",
// whichever request finishes later.
//
// The zero value is not useful; use NewStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	logger  *slog.Logger
}

// NewStore creates an empty Store. nil logger means slog.Default.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

// Get returns the user's entry and whether one exists.
func (s *Store) Get(userID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[userID]
	return e, ok
}

// Put replaces the user's entry with a new artifact. Entries are always
// overwritten whole, never merged, so two consecutive improvements leave
// exactly the second result.
func (s *Store) Put(userID string, a *artifact.Artifact) {
	s.mu.Lock()
	s.entries[userID] = Entry{
		UserID:    userID,
		Artifact:  a,
		UpdatedAt: time.Now(),
	}
	s.mu.Unlock()

	s.logger.Debug("stored last artifact",
		"user_id", userID,
		"language", a.Language,
		"length", a.Length)
}

// Len reports how many users currently have an entry.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
