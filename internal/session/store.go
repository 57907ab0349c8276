package session

import (
	"log"
	"sync"
	"time"

	"frontgen_server/internal/types"
)

// Session holds the state of one user's current generation: at most one
// bundle, plus the sequence number of the latest submitted request.
// Bundles are never shared across sessions.
type Session struct {
	ID string

	mu         sync.Mutex
	seq        uint64
	projectID  string
	bundle     *types.ProjectBundle
	diags      *types.Diagnostics
	rawText    string
	lastAccess time.Time
}

// Begin marks the start of a new generation and returns its sequence
// number. Any bundle from a previous generation is discarded now, not
// when (or if) the new completion arrives.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.bundle = nil
	s.diags = nil
	s.rawText = ""
	s.projectID = ""
	s.lastAccess = time.Now()
	return s.seq
}

// Commit stores a finished generation, but only if seq still identifies
// the latest submitted request. A stale completion (the user resubmitted
// while it was in flight) is dropped and Commit returns false:
// last-submitted-request-wins, not last-arrived-response-wins.
func (s *Session) Commit(seq uint64, projectID string, bundle *types.ProjectBundle, diags *types.Diagnostics, rawText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		log.Printf("Session %s: discarding stale completion (seq %d, current %d)", s.ID, seq, s.seq)
		return false
	}
	s.projectID = projectID
	s.bundle = bundle
	s.diags = diags
	s.rawText = rawText
	s.lastAccess = time.Now()
	return true
}

// Bundle returns the current bundle, if a generation has completed.
func (s *Session) Bundle() (string, *types.ProjectBundle, *types.Diagnostics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = time.Now()
	if s.bundle == nil {
		return "", nil, nil, false
	}
	return s.projectID, s.bundle, s.diags, true
}

// RawCompletion returns the unparsed model output of the last committed
// generation, for display alongside parse diagnostics.
func (s *Session) RawCompletion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawText
}

// Store owns all sessions. Idle sessions are swept out after the
// configured TTL.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go st.janitor()
	return st
}

// GetOrCreate returns the session for id, creating it on first use.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = &Session{ID: id, lastAccess: time.Now()}
	st.sessions[id] = s
	return s
}

// Close stops the expiry janitor.
func (st *Store) Close() {
	st.closeOnce.Do(func() { close(st.done) })
}

func (st *Store) janitor() {
	ticker := time.NewTicker(st.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-st.done:
			return
		case <-ticker.C:
			st.sweep(time.Now())
		}
	}
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastAccess)
		s.mu.Unlock()
		if idle > st.ttl {
			delete(st.sessions, id)
		}
	}
}
