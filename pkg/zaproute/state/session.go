package state

import "slices"

// Session is a session-scoped key-value store. The backing map is created on
// first write so a zero Session is ready to use.
type Session struct {
	values map[string]any
}

// NewSession creates an empty session store.
func NewSession() *Session {
	return &Session{}
}

// Get returns the value stored under key and whether the key is present.
// A key may be present with a nil value.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the value under key if it is a string.
func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.values[key].(string)
	return v, ok
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Set stores value under key.
func (s *Session) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// Delete removes key.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

// Keys returns the stored keys in sorted order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clear drops every key.
func (s *Session) Clear() {
	s.values = nil
}
