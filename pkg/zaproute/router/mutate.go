package router

import "github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"

// SetRoute makes route current for the next cycle by writing it to the
// session store and, when enabled, the query store. Unregistered routes are
// ignored. Navigation widgets use it as their callback.
func (r *Router) SetRoute(route string) {
	if !r.Routes.Has(route) {
		r.logger.Debug("ignoring unregistered route", "route", route)
		return
	}
	r.SetSessionRoute(route)
	r.SetQueryRoute(route)
}

// SetSessionRoute writes route to the session store without validation.
func (r *Router) SetSessionRoute(route string) {
	r.session.Set(constants.SessionRouteKey, route)
}

// SetQueryRoute writes route to the query store without validation, keeping
// every other parameter. It does nothing when query sync is disabled.
func (r *Router) SetQueryRoute(route string) {
	if r.queryKeyword == "" {
		return
	}
	params := r.query.All()
	params[r.queryKeyword] = []string{route}
	r.query.SetAll(params)
}

