package router

// Render draws the page for the current route, or the not-found view.
func (r *Router) Render() error {
	return r.RenderRoute(r.Current())
}

// RenderRoute draws the page registered under route. Unregistered routes get
// the not-found view. A page error is returned as a *RenderError; panics are
// not recovered.
func (r *Router) RenderRoute(route string) error {
	page, ok := r.Routes.Get(route)
	if !ok {
		r.NotFound(route)
		return nil
	}
	if page == nil {
		return nil
	}
	if err := page(); err != nil {
		r.logger.Error("page failed", "route", route, "error", err)
		return &RenderError{Route: route, Err: err}
	}
	return nil
}

// NotFound shows a warning and a link to the index.
func (r *Router) NotFound(route string) {
	r.logger.Info("route not found", "route", route)
	r.ui.Warning(r.printer.NotFound())
	r.Link(r.IndexRoute(), nil, r.printer.TakeMeToIndex(), "")
}
