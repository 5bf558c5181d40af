package session

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/pkg/utils"
)

// ErrNotAuthenticated is returned by the gate when a protected operation
// is attempted without a valid session.
var ErrNotAuthenticated = errors.New("not signed in")

// ErrAlreadyAuthenticated is returned by the gate when sign-in is attempted
// while a session is already held.
var ErrAlreadyAuthenticated = errors.New("already signed in")

// Guard watches an authenticated session and signs the user out the moment
// the access token expires. The check runs on a fixed interval while a
// session is authenticated, and the timer is torn down deterministically
// when the session ends or Stop is called.
type Guard struct {
	store    *Store
	clock    clock.Clock
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	stopAll chan struct{}
	ticking chan struct{} // closed to stop the current ticker loop
	done    sync.WaitGroup
}

// NewGuard creates a Guard polling at the given interval
func NewGuard(store *Store, interval time.Duration, clk clock.Clock, log *zap.Logger) *Guard {
	if interval <= 0 {
		interval = time.Minute
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Guard{
		store:    store,
		clock:    clk,
		interval: interval,
		log:      log,
	}
}

// Start begins enforcement. The expiry check runs immediately for an
// already-authenticated session, then on every interval tick until the
// session becomes anonymous or Stop is called.
func (g *Guard) Start() {
	g.mu.Lock()
	if g.stopAll != nil {
		g.mu.Unlock()
		return
	}
	g.stopAll = make(chan struct{})
	stopAll := g.stopAll
	g.mu.Unlock()

	updates, cancel := g.store.Subscribe()

	if g.store.IsAuthenticated() {
		g.checkNow()
		g.startTicker()
	}

	g.done.Add(1)
	go func() {
		defer g.done.Done()
		defer cancel()
		for {
			select {
			case <-stopAll:
				g.stopTicker()
				return
			case state, ok := <-updates:
				if !ok {
					return
				}
				if state.IsAuthenticated {
					g.startTicker()
				} else {
					g.stopTicker()
				}
			}
		}
	}()
}

// Stop tears the guard down. No timers survive it.
func (g *Guard) Stop() {
	g.mu.Lock()
	if g.stopAll == nil {
		g.mu.Unlock()
		return
	}
	close(g.stopAll)
	g.stopAll = nil
	g.mu.Unlock()
	g.done.Wait()
}

// RequireAuth gates protected operations
func (g *Guard) RequireAuth() error {
	if !g.store.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireAnonymous gates the sign-in flow
func (g *Guard) RequireAnonymous() error {
	if g.store.IsAuthenticated() {
		return ErrAlreadyAuthenticated
	}
	return nil
}

func (g *Guard) startTicker() {
	g.mu.Lock()
	if g.ticking != nil {
		g.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	g.ticking = stop
	g.mu.Unlock()

	ticker := g.clock.Ticker(g.interval)
	g.done.Add(1)
	go func() {
		defer g.done.Done()
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				g.checkNow()
			}
		}
	}()
}

func (g *Guard) stopTicker() {
	g.mu.Lock()
	if g.ticking != nil {
		close(g.ticking)
		g.ticking = nil
	}
	g.mu.Unlock()
}

func (g *Guard) checkNow() {
	state := g.store.Session()
	if !state.IsAuthenticated {
		return
	}
	if utils.IsTokenExpiredAt(state.AccessToken, g.clock.Now()) {
		g.log.Info("access token expired, signing out")
		g.store.Logout()
	}
}
