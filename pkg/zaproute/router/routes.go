package router

// Routes is an ordered mapping from route key to page. Keys keep the position
// of their first insertion; overwriting a key replaces its page in place.
// The zero value is an empty mapping ready to use.
type Routes struct {
	keys  []string
	pages map[string]PageFunc
}

// NewRoutes creates an empty route mapping.
func NewRoutes() *Routes {
	return &Routes{pages: make(map[string]PageFunc)}
}

// Set adds or overwrites the page for key.
func (rs *Routes) Set(key string, fn PageFunc) {
	if rs.pages == nil {
		rs.pages = make(map[string]PageFunc)
	}
	if _, ok := rs.pages[key]; !ok {
		rs.keys = append(rs.keys, key)
	}
	rs.pages[key] = fn
}

// Get returns the page registered under key.
func (rs *Routes) Get(key string) (PageFunc, bool) {
	fn, ok := rs.pages[key]
	return fn, ok
}

// Has reports whether key is registered.
func (rs *Routes) Has(key string) bool {
	_, ok := rs.pages[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (rs *Routes) Delete(key string) {
	if _, ok := rs.pages[key]; !ok {
		return
	}
	delete(rs.pages, key)
	for i, k := range rs.keys {
		if k == key {
			rs.keys = append(rs.keys[:i], rs.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the registered keys in insertion order.
func (rs *Routes) Keys() []string {
	return append([]string(nil), rs.keys...)
}

// Len returns the number of registered routes.
func (rs *Routes) Len() int {
	return len(rs.keys)
}
