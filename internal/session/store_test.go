package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/storage"
)

// recordingStore counts persistence calls so tests can assert on write
// behavior, not just final state.
type recordingStore struct {
	mu     sync.Mutex
	creds  storage.Credentials
	saves  int
	clears int
}

func (r *recordingStore) Load() (storage.Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creds, nil
}

func (r *recordingStore) Save(c storage.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds = c
	r.saves++
	return nil
}

func (r *recordingStore) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds = storage.Credentials{}
	r.clears++
	return nil
}

func (r *recordingStore) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves, r.clears
}

func newTestStore(creds storage.Credentials) (*Store, *recordingStore) {
	rec := &recordingStore{creds: creds}
	return NewStore(rec, zap.NewNop()), rec
}

func TestAuthenticatedIffTokenAndUser(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com", Role: "admin"}

	cases := []struct {
		name  string
		creds storage.Credentials
		want  bool
	}{
		{"token and user", storage.Credentials{Token: "tok", User: user}, true},
		{"token only", storage.Credentials{Token: "tok"}, false},
		{"user only", storage.Credentials{User: user}, false},
		{"neither", storage.Credentials{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newTestStore(tc.creds)
			state := store.Session()
			assert.Equal(t, tc.want, state.IsAuthenticated)
			assert.Equal(t, state.AccessToken != "" && state.User != nil, state.IsAuthenticated)
		})
	}
}

func TestLoginTransitions(t *testing.T) {
	store, rec := newTestStore(storage.Credentials{})
	user := &models.User{ID: "u1", Email: "a@b.com", Role: "admin"}

	store.LoginStart()
	state := store.Session()
	assert.True(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)

	store.LoginSuccess(user, "access", "refresh")
	state = store.Session()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "access", store.Token())

	saves, _ := rec.counts()
	assert.Equal(t, 1, saves)
	assert.Equal(t, "access", rec.creds.Token)
	assert.Equal(t, user, rec.creds.User)
}

func TestLoginFailureClearsState(t *testing.T) {
	store, rec := newTestStore(storage.Credentials{})

	store.LoginStart()
	store.LoginFailure("invalid credentials")

	state := store.Session()
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.AccessToken)
	assert.Nil(t, state.User)
	assert.Equal(t, "invalid credentials", state.Error)

	saves, _ := rec.counts()
	assert.Zero(t, saves, "a failed login must not persist anything")
}

func TestLogoutIdempotent(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com"}
	store, rec := newTestStore(storage.Credentials{Token: "tok", User: user})

	store.Logout()
	require.False(t, store.IsAuthenticated())
	_, clears := rec.counts()
	assert.Equal(t, 1, clears)

	// Logging out while already anonymous changes nothing and writes nothing
	store.Logout()
	store.Logout()
	_, clears = rec.counts()
	assert.Equal(t, 1, clears)
	assert.Equal(t, models.Session{}, store.Session())
}

func TestSubscribeObservesTransitions(t *testing.T) {
	store, _ := newTestStore(storage.Credentials{})
	updates, cancel := store.Subscribe()
	defer cancel()

	store.LoginStart()
	state := <-updates
	assert.True(t, state.IsLoading)

	store.LoginSuccess(&models.User{ID: "u1"}, "tok", "")
	state = <-updates
	assert.True(t, state.IsAuthenticated)

	store.Logout()
	state = <-updates
	assert.False(t, state.IsAuthenticated)
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	store, _ := newTestStore(storage.Credentials{})
	updates, cancel := store.Subscribe()
	cancel()

	store.LoginStart()
	_, open := <-updates
	assert.False(t, open, "cancelled subscription channel should be closed")

	// Cancelling twice must not panic
	cancel()
}
