package state

import (
	"net/url"
	"slices"
)

// Query is a query-string backed key-value store. It mirrors the query part of
// the page URL; the host loads it from the request and writes it back to the
// browser without a reload.
type Query struct {
	values url.Values
}

// NewQuery creates a query store holding a copy of values.
func NewQuery(values url.Values) *Query {
	q := &Query{}
	q.Replace(values)
	return q
}

// ParseQuery creates a query store from an encoded query string.
func ParseQuery(raw string) (*Query, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	return NewQuery(values), nil
}

// All returns a copy of every parameter.
func (q *Query) All() map[string][]string {
	out := make(map[string][]string, len(q.values))
	for k, v := range q.values {
		out[k] = slices.Clone(v)
	}
	return out
}

// Get returns the first value stored under key.
func (q *Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// SetAll replaces the stored parameters with params.
func (q *Query) SetAll(params map[string][]string) {
	q.Replace(params)
}

// Set stores a single value under key, keeping other parameters.
func (q *Query) Set(key, value string) {
	if q.values == nil {
		q.values = url.Values{}
	}
	q.values.Set(key, value)
}

// Delete removes key. Deleting a missing key is a no-op.
func (q *Query) Delete(key string) {
	delete(q.values, key)
}

// Replace swaps the whole content for a copy of values.
func (q *Query) Replace(values map[string][]string) {
	q.values = make(url.Values, len(values))
	for k, v := range values {
		q.values[k] = slices.Clone(v)
	}
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	return len(q.values)
}

// Keys returns the parameter names in sorted order.
func (q *Query) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for k := range q.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Encode returns the URL-encoded form of the store, sorted by key.
func (q *Query) Encode() string {
	return q.values.Encode()
}
