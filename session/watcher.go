package session

import (
	"context"
	"errors"
	"time"

	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/models"
	"github.com/vidhi3000/project-harmony-main/store"
)

// Watcher polls the identity provider and pushes every session change
// into the store. Whatever the latest poll reports overwrites the
// session state unconditionally: signed-in installs the user and sets
// isAuthenticated, signed-out clears both. Transport failures change
// nothing; they are not session events.
type Watcher struct {
	store    *store.Store
	client   *Client
	secret   string
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewWatcher builds a watcher that polls every interval.
func NewWatcher(s *store.Store, client *Client, secret string, interval time.Duration) *Watcher {
	return &Watcher{
		store:    s,
		client:   client,
		secret:   secret,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Apply installs a session outcome in the store. Exported so a
// push-style delivery can feed the store without the poll loop.
func (w *Watcher) Apply(user *models.User) {
	if user == nil {
		w.store.SetCurrentUser(nil)
		w.store.SetAuthenticated(false)
		return
	}
	w.store.SetCurrentUser(user)
	w.store.SetAuthenticated(true)
}

func (w *Watcher) poll(ctx context.Context) {
	session, err := w.client.FetchSession(ctx)
	if err != nil {
		if errors.Is(err, ErrSignedOut) {
			w.Apply(nil)
			return
		}
		logging.Logger.Warnf("Event ID: SESSION_FETCH_FAILED, Description: Could not reach identity provider: %v", err)
		return
	}

	user, err := UserFromToken(session.AccessToken, w.secret)
	if err != nil {
		logging.Logger.Warnf("Event ID: SESSION_TOKEN_INVALID, Description: Rejecting session token: %v", err)
		w.Apply(nil)
		return
	}
	w.Apply(user)
}

// Start checks the session once immediately, then keeps polling on its
// own goroutine until Stop is called.
func (w *Watcher) Start() {
	go func() {
		defer close(w.done)

		ctx := context.Background()
		w.poll(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.poll(ctx)
			}
		}
	}()
}

// Stop releases the subscription and waits for the poll loop to exit.
// After Stop returns the watcher will never touch the store again.
func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
}
