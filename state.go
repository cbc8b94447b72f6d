package pubhub

import (
	"errors"
	"sync"

	"github.com/pubhub/pubhub.go/pkg/gateway"
)

// storeState is the busy-flag and error-field discipline shared by every
// store. begin marks the store loading and clears the previous error;
// the returned release runs deferred so the flag is dropped on every
// exit path.
//
// The mutex guards field access only. It is never held across a network
// round trip, so overlapping actions against one store stay unserialized
// and the last response to arrive wins.
type storeState struct {
	mu      sync.RWMutex
	loading bool
	lastErr string
}

func (s *storeState) begin() (release func()) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}
}

// fail records the message shown to the user for the failed action.
func (s *storeState) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// Loading reports whether an action is in flight. Visibility hint only;
// it does not reject or serialize concurrent calls.
func (s *storeState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the human-readable message of the last failed action, or
// "" after a successful one.
func (s *storeState) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// recordFailure stores the server's message verbatim for a domain error
// and the action's generic localized message for anything else
// (network-class failures are indistinguishable from thrown errors).
func (s *storeState) recordFailure(err error, generic string) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		s.fail(apiErr.Message)
		return
	}
	s.fail(generic)
}
