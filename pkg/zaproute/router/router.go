package router

import (
	"log/slog"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/internal"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/messages"
)

// PageFunc renders one page. It produces UI side effects only; a returned
// error aborts the render cycle.
type PageFunc func() error

// QueryStore is the URL query string of the current page.
// SetAll must update the URL without forcing a page reload.
type QueryStore interface {
	All() map[string][]string
	SetAll(params map[string][]string)
	Delete(key string)
}

// SessionStore holds values for the lifetime of a user session.
type SessionStore interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Surface is the part of the UI the router draws on: notices and the
// widgets used for navigation. Positions passed to Link, Links and Navigate
// are Surfaces too. A Surface implementing fmt.Stringer gets readable default
// widget keys.
type Surface interface {
	Info(text string)
	Warning(text string)
	Error(text string)
	Button(label, key string, onClick func())
	Select(label, key string, options []string, selected string, onChange func(string))
	Radio(label, key string, options []string, selected string, onChange func(string))
}

// Options configures a Router.
type Options struct {
	QueryKeyword string            // Query parameter used for route sync; empty disables it
	Index        string            // Explicit index route; defaults to the first registered route
	Printer      *messages.Printer // Localised notices; defaults to English
	Logger       *slog.Logger      // Defaults to the internal logger
}

// Router keeps the current route in step across the query store and the
// session store, and dispatches to the registered pages.
//
// A Router lives for one render cycle: hosts that re-run the page build it,
// register pages, then render. It is not safe for concurrent use.
type Router struct {
	// Routes holds the registered pages in registration order.
	// Routes.Set registers a page without touching Index.
	Routes *Routes

	// Index is the fallback route. It may name a route that is not registered
	// yet, or none at all; see IndexRoute.
	Index string

	query        QueryStore
	session      SessionStore
	ui           Surface
	queryKeyword string
	printer      *messages.Printer
	logger       *slog.Logger

	current  string
	resolved bool
}

// New creates a Router over the given stores. query may be nil when
// Options.QueryKeyword is empty. Notices and not-found views are drawn on ui.
func New(query QueryStore, session SessionStore, ui Surface, opts Options) *Router {
	r := &Router{
		Routes:       NewRoutes(),
		Index:        opts.Index,
		query:        query,
		session:      session,
		ui:           ui,
		queryKeyword: opts.QueryKeyword,
		printer:      opts.Printer,
		logger:       opts.Logger,
	}
	if r.printer == nil {
		r.printer = messages.Default()
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}
	if query == nil {
		r.queryKeyword = ""
	}
	return r
}

// Register adds or overwrites the page for key and returns fn unchanged.
// The first registered route becomes the index unless one was set.
func (r *Router) Register(key string, fn PageFunc) PageFunc {
	return r.register(key, fn, false)
}

// RegisterIndex registers the page for key and makes key the index.
func (r *Router) RegisterIndex(key string, fn PageFunc) PageFunc {
	return r.register(key, fn, true)
}

func (r *Router) register(key string, fn PageFunc, isIndex bool) PageFunc {
	if r.Index == "" || isIndex {
		r.Index = key
	}
	r.Routes.Set(key, fn)
	return fn
}

// IndexRoute returns the effective index: Index when set, otherwise the first
// registered route, otherwise "".
func (r *Router) IndexRoute() string {
	if r.Index != "" {
		return r.Index
	}
	if keys := r.Routes.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// QueryKeyword returns the query parameter used for route sync, or "" when
// query sync is disabled.
func (r *Router) QueryKeyword() string {
	return r.queryKeyword
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return r.Routes.Len()
}
