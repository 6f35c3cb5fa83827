// Package router maps a "current page" key to a render function for hosts that
// re-run the whole page on every interaction.
//
// The current route is kept both in the session store and in a URL query
// parameter, and navigation widgets display it. The router keeps them in step. Each render cycle it reads the query store first,
// then the session store, writes the winner back to both, and dispatches to
// the registered page or to a not-found view.
//
// # Basic Usage
//
//	r := router.New(c.Query, c.Session, c.Main, router.Options{QueryKeyword: "route"})
//
//	r.RegisterIndex("Index", func() error {
//	    c.Main.Markdown("# Index page")
//	    return nil
//	})
//	r.Register("Queries", queriesPage)
//
//	// Pages can also be added without Register.
//	r.Routes.Set("Links", linksPage)
//
//	r.Navigate(constants.NavigationRadio, c.Sidebar, "Navigate by radio buttons")
//	if err := r.Render(); err != nil {
//	    return err
//	}
//
// # Resolution
//
// A route found in the query store always wins and is passed through even if
// it names no page; the not-found view handles it. A route taken from the
// session store is checked: when it names no page it is reset to the index and
// the user is told so.
//
// SetRoute only accepts registered routes, and writes them to both stores.
// Widgets call it from their callbacks, so the change shows on the next cycle.
package router
