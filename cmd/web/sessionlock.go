package main

import (
	"net/http"
	"sync"
)

// sessionLocker hands out one mutex per session token so that requests
// sharing a session run one at a time. Entries are reference counted and
// dropped when the last holder releases, so the map only holds tokens with
// in-flight requests.
type sessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocker() *sessionLocker {
	return &sessionLocker{locks: make(map[string]*sessionLock)}
}

// acquire blocks until the token's lock is held and returns its release func.
func (l *sessionLocker) acquire(token string) func() {
	l.mu.Lock()
	lock, ok := l.locks[token]
	if !ok {
		lock = &sessionLock{}
		l.locks[token] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, token)
		}
		l.mu.Unlock()
	}
}

// lockSession serializes requests that arrive with the same session cookie.
// The play handlers read the progression state at the start of a request and
// write it back at the end; without the lock two rapid choice submissions
// would both observe the playing phase and both reach the vote ledger.
// Requests without a session cookie get fresh, distinct sessions and need no
// lock.
func (app *application) lockSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(app.sessionManager.Cookie.Name); err == nil && cookie.Value != "" {
			release := app.sessionLocks.acquire(cookie.Value)
			defer release()
		}
		next.ServeHTTP(w, r)
	})
}
