package router

import (
	"net/url"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
)

// GetRoute resolves the current route and writes it back to both stores.
//
// The query store is consulted first. Only when it holds no route is the
// session store used, and a session route that names no page is reset to the
// index with an info notice. The returned route may still be unregistered
// when it came from the query store; RenderRoute shows the not-found view
// for it.
func (r *Router) GetRoute() string {
	route, ok := r.queryRoute()
	if !ok {
		route = r.sessionRoute()
	}

	r.SetRoute(route)

	r.current, r.resolved = route, true
	r.logger.Debug("route resolved", "route", route, "from_query", ok)
	return route
}

// Current returns the route resolved in this cycle, resolving it on first use.
// Widgets and Render read it so a cycle resolves at most once.
func (r *Router) Current() string {
	if !r.resolved {
		return r.GetRoute()
	}
	return r.current
}

func (r *Router) queryRoute() (string, bool) {
	if r.queryKeyword == "" {
		return "", false
	}

	values, ok := r.query.All()[r.queryKeyword]
	if !ok || len(values) == 0 {
		return "", false
	}

	route := values[0]
	if decoded, err := url.PathUnescape(route); err == nil {
		route = decoded
	}
	return route, true
}

func (r *Router) sessionRoute() string {
	stored, ok := r.session.Get(constants.SessionRouteKey)
	if !ok {
		r.session.Set(constants.SessionRouteKey, nil)
	}

	if stored == nil {
		stored = r.IndexRoute()
		r.session.Set(constants.SessionRouteKey, stored)
	}

	route, isString := stored.(string)
	if !isString || !r.Routes.Has(route) {
		r.logger.Info("session route not registered, redirecting to index", "route", stored, "index", r.IndexRoute())
		r.ui.Info(r.printer.RedirectingToIndex())
		route = r.IndexRoute()
		r.session.Set(constants.SessionRouteKey, route)
	}
	return route
}
