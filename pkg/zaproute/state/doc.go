// Package state provides the in-memory stores a page router reads and writes
// during a render cycle: a URL query store and a session store.
//
// Both stores belong to one user session. They are not safe for concurrent
// use; the host serialises render cycles per session.
package state
