package param

import (
	"net/url"
	"sync"
)

// Strategy abstracts where encoded params live in a location: the query
// string or the hash fragment. It exposes per-key read/write plus change
// subscription; Bind builds reactive param bindings on top of it.
//
// Write with present=false removes the key, matching the param layer's
// default-omission contract.
type Strategy interface {
	Read(key string) (string, bool)
	Write(key string, value string, present bool)
	Subscribe(fn func()) (cancel func())
}

// paramStore is the shared state behind the query and hash strategies: a
// url.Values map guarded by a mutex, with change notification.
type paramStore struct {
	mu     sync.Mutex
	values url.Values
	subs   map[int]func()
	nextID int
}

func newParamStore(rawQuery string) *paramStore {
	// ParseQuery reports an error on malformed input but still returns the
	// pairs it could parse; malformed URL text degrades, never fails.
	values, _ := url.ParseQuery(rawQuery)

	return &paramStore{
		values: values,
		subs:   make(map[int]func()),
	}
}

func (s *paramStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.values.Has(key) {
		return "", false
	}

	return s.values.Get(key), true
}

func (s *paramStore) Write(key string, value string, present bool) {
	s.mu.Lock()

	if present {
		if s.values.Has(key) && s.values.Get(key) == value {
			s.mu.Unlock()
			return
		}
		s.values.Set(key, value)
	} else {
		if !s.values.Has(key) {
			s.mu.Unlock()
			return
		}
		s.values.Del(key)
	}

	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *paramStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Replace swaps in a whole new encoded state (e.g. a browser navigation or
// history pop) and notifies subscribers.
func (s *paramStore) Replace(rawQuery string) {
	values, _ := url.ParseQuery(rawQuery)

	s.mu.Lock()
	s.values = values
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// snapshot copies the subscriber list so callbacks run outside the lock.
// Callers must hold s.mu.
func (s *paramStore) snapshot() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs
}

func (s *paramStore) encode() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values.Encode()
}

// QueryStrategy stores params in a URL query string ("?a=1&b=2").
type QueryStrategy struct {
	*paramStore
}

var _ Strategy = (*QueryStrategy)(nil)

// NewQueryStrategy creates a query-string strategy seeded from rawQuery
// (without the leading '?'; may be empty).
func NewQueryStrategy(rawQuery string) *QueryStrategy {
	return &QueryStrategy{paramStore: newParamStore(rawQuery)}
}

// String returns the current state as an encoded query string, without the
// leading '?'.
func (s *QueryStrategy) String() string {
	return s.encode()
}

// HashStrategy stores params in a URL hash fragment ("#a=1&b=2"),
// query-encoded after the '#'. Hash state never reaches the server and
// does not trigger page loads, which suits purely client-side view state.
type HashStrategy struct {
	*paramStore
}

var _ Strategy = (*HashStrategy)(nil)

// NewHashStrategy creates a hash-fragment strategy seeded from fragment
// (without the leading '#'; may be empty).
func NewHashStrategy(fragment string) *HashStrategy {
	return &HashStrategy{paramStore: newParamStore(fragment)}
}

// String returns the current state as an encoded fragment, with the
// leading '#' (empty string when no params are set).
func (s *HashStrategy) String() string {
	encoded := s.encode()
	if encoded == "" {
		return ""
	}

	return "#" + encoded
}
