// Package fakeapi provides an in-process fake PubHub API server for
// testing purposes. It speaks the platform's HTTP JSON contract and
// includes simple failure injection.
//
// Stub responses are registered per method and path (query string
// included); unmatched requests answer with a 404 error payload, which
// the client classifies as a domain failure like any other. The server
// records every request it sees so tests can assert on call sequences,
// e.g. the refetch that follows a successful mutation.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// FailureType selects how the next matched request misbehaves.
type FailureType string

const (
	// FailureNone indicates no failure injection.
	FailureNone FailureType = "none"
	// FailureDropConnection closes the underlying connection without
	// writing a response, which the client sees as a transport error.
	FailureDropConnection FailureType = "drop_connection"
	// FailureResponseDelay delays the response by the configured
	// duration before answering normally.
	FailureResponseDelay FailureType = "response_delay"
)

// Stub is a canned response for one route.
type Stub struct {
	Status int
	Body   any

	// Handler, when set, takes over the route entirely and Status/Body
	// are ignored. Used for cookie handshakes and other custom cases.
	Handler http.HandlerFunc
}

// Server is the fake platform API.
type Server struct {
	mu       sync.Mutex
	stubs    map[string]Stub
	requests []string

	failure      FailureType
	failureDelay time.Duration

	httpServer *httptest.Server
}

func NewServer() *Server {
	s := &Server{
		stubs:   make(map[string]Stub),
		failure: FailureNone,
	}
	s.httpServer = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL is the base URL to point the gateway at.
func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Stub registers a canned success response for a route. The path must
// match the request URI exactly, query string included.
func (s *Server) Stub(method, path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[routeKey(method, path)] = Stub{Status: status, Body: body}
}

// StubError registers a platform error payload for a route.
func (s *Server) StubError(method, path string, status int, message string) {
	s.Stub(method, path, status, map[string]string{"error": message})
}

// StubFunc registers a custom handler for a route.
func (s *Server) StubFunc(method, path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[routeKey(method, path)] = Stub{Handler: handler}
}

// FailNext arms a one-shot failure for the next request, whatever its
// route.
func (s *Server) FailNext(failure FailureType, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = failure
	s.failureDelay = delay
}

// Requests returns the "METHOD path" log of everything received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// ResetRequests clears the request log but keeps the stubs.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	key := routeKey(r.Method, r.URL.RequestURI())

	s.mu.Lock()
	s.requests = append(s.requests, key)
	stub, ok := s.stubs[key]
	failure := s.failure
	delay := s.failureDelay
	s.failure = FailureNone
	s.failureDelay = 0
	s.mu.Unlock()

	switch failure {
	case FailureDropConnection:
		if hj, canHijack := w.(http.Hijacker); canHijack {
			conn, _, err := hj.Hijack()
			if err == nil {
				conn.Close()
				return
			}
		}
		panic("fakeapi: connection cannot be dropped")
	case FailureResponseDelay:
		time.Sleep(delay)
	}

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found: " + key})
		return
	}

	if stub.Handler != nil {
		stub.Handler(w, r)
		return
	}

	writeJSON(w, stub.Status, stub.Body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
