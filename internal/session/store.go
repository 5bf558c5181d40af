// Package session owns the client's authentication state. The Store is the
// single place session state may change, and only through its declared
// transitions; everything else reads snapshots or subscribes.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/storage"
)

// Store is an injected state container for the session. It is created at
// boot from persisted credentials and mutated only through LoginStart,
// LoginSuccess, LoginFailure and Logout.
type Store struct {
	mu    sync.RWMutex
	state models.Session
	creds storage.CredentialStore
	log   *zap.Logger

	subs map[chan models.Session]struct{}
}

// NewStore creates a Store, reading any persisted credentials once.
// A user is considered authenticated only when both a token and an
// identity were persisted.
func NewStore(creds storage.CredentialStore, log *zap.Logger) *Store {
	s := &Store{
		creds: creds,
		log:   log,
		subs:  make(map[chan models.Session]struct{}),
	}

	saved, err := creds.Load()
	if err != nil {
		log.Warn("could not read persisted session", zap.Error(err))
		saved = storage.Credentials{}
	}
	s.state = models.Session{
		User:            saved.User,
		AccessToken:     saved.Token,
		RefreshToken:    saved.RefreshToken,
		IsAuthenticated: saved.Token != "" && saved.User != nil,
	}
	return s
}

// Session returns a snapshot of the current state
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current access token. It satisfies transport.TokenSource
// so every request reads the token at call time.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

// IsAuthenticated reports whether a valid session is held
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// LoginStart marks a login attempt in flight. Submission is expected to be
// blocked while IsLoading is set.
func (s *Store) LoginStart() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	state := s.state
	s.mu.Unlock()
	s.notify(state)
}

// LoginSuccess stores the authenticated identity and persists it
func (s *Store) LoginSuccess(user *models.User, accessToken, refreshToken string) {
	s.mu.Lock()
	s.state = models.Session{
		User:            user,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		IsAuthenticated: true,
	}
	state := s.state
	s.mu.Unlock()

	if err := s.creds.Save(storage.Credentials{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}); err != nil {
		s.log.Warn("could not persist session", zap.Error(err))
	}
	s.notify(state)
}

// LoginFailure records a failed attempt and clears any stored credentials
func (s *Store) LoginFailure(message string) {
	s.mu.Lock()
	s.state = models.Session{Error: message}
	state := s.state
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.log.Warn("could not clear persisted session", zap.Error(err))
	}
	s.notify(state)
}

// Logout clears session state and persisted credentials. Calling it while
// already anonymous changes nothing and writes nothing.
func (s *Store) Logout() {
	s.mu.Lock()
	if !s.state.IsAuthenticated && s.state.AccessToken == "" && s.state.User == nil {
		s.mu.Unlock()
		return
	}
	s.state = models.Session{}
	state := s.state
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.log.Warn("could not clear persisted session", zap.Error(err))
	}
	s.notify(state)
}

// Subscribe returns a channel receiving every subsequent state change and
// a cancel func that releases it.
func (s *Store) Subscribe() (<-chan models.Session, func()) {
	ch := make(chan models.Session, 8)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notify(state models.Session) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- state:
		default:
			// Slow subscriber; it will observe the next transition or can
			// read a snapshot via Session()
		}
	}
}
