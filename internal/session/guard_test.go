package session

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/storage"
)

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestGuardSignsOutExpiredSessionImmediately(t *testing.T) {
	mock := clock.NewMock()
	expired := mintToken(t, mock.Now().Add(-time.Second))
	store, _ := newTestStore(storage.Credentials{
		Token: expired,
		User:  &models.User{ID: "u1"},
	})
	require.True(t, store.IsAuthenticated())

	guard := NewGuard(store, time.Minute, mock, zap.NewNop())
	guard.Start()
	defer guard.Stop()

	// The first check runs on Start, before any tick
	assert.False(t, store.IsAuthenticated())
}

func TestGuardSignsOutWhenTokenExpiresLater(t *testing.T) {
	mock := clock.NewMock()
	token := mintToken(t, mock.Now().Add(90*time.Second))
	store, _ := newTestStore(storage.Credentials{
		Token: token,
		User:  &models.User{ID: "u1"},
	})

	guard := NewGuard(store, time.Minute, mock, zap.NewNop())
	guard.Start()
	defer guard.Stop()

	mock.Add(time.Minute)
	assert.True(t, store.IsAuthenticated(), "token is still valid at the first tick")

	require.Eventually(t, func() bool {
		mock.Add(time.Minute)
		return !store.IsAuthenticated()
	}, time.Second, 10*time.Millisecond, "guard should sign out once the token expires")
}

func TestGuardStopCancelsTimer(t *testing.T) {
	mock := clock.NewMock()
	token := mintToken(t, mock.Now().Add(30*time.Second))
	store, _ := newTestStore(storage.Credentials{
		Token: token,
		User:  &models.User{ID: "u1"},
	})

	guard := NewGuard(store, time.Minute, mock, zap.NewNop())
	guard.Start()
	guard.Stop()

	// After Stop no check may fire, even past expiry
	mock.Add(5 * time.Minute)
	assert.True(t, store.IsAuthenticated())

	// Stop is idempotent
	guard.Stop()
}

func TestGuardArmsOnLogin(t *testing.T) {
	mock := clock.NewMock()
	store, _ := newTestStore(storage.Credentials{})

	guard := NewGuard(store, time.Minute, mock, zap.NewNop())
	guard.Start()
	defer guard.Stop()

	// Anonymous session: nothing to enforce
	mock.Add(10 * time.Minute)
	assert.False(t, store.IsAuthenticated())

	expiringSoon := mintToken(t, mock.Now().Add(30*time.Second))
	store.LoginSuccess(&models.User{ID: "u1"}, expiringSoon, "")

	require.Eventually(t, func() bool {
		mock.Add(time.Minute)
		return !store.IsAuthenticated()
	}, time.Second, 10*time.Millisecond, "guard should arm for sessions that become authenticated after Start")
}

func TestGuardGates(t *testing.T) {
	store, _ := newTestStore(storage.Credentials{})
	guard := NewGuard(store, time.Minute, clock.NewMock(), zap.NewNop())

	assert.ErrorIs(t, guard.RequireAuth(), ErrNotAuthenticated)
	assert.NoError(t, guard.RequireAnonymous())

	store.LoginSuccess(&models.User{ID: "u1"}, "tok", "")
	assert.NoError(t, guard.RequireAuth())
	assert.ErrorIs(t, guard.RequireAnonymous(), ErrAlreadyAuthenticated)
}
