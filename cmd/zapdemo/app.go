package main

import (
	"fmt"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/config"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/router"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/web"
)

const indexText = `
Routing between pages can be done with radio buttons, a select box, links
and/or URL queries.

1. **radio**: the easiest method is radio buttons in the sidebar, drawn by
   ` + "`r.Navigate(constants.NavigationRadio, c.Sidebar, label)`" + `.
2. **selectbox**: with many pages a select box fits better. The position can
   be any container, e.g. the main area or a column.
3. **links**: any page can be linked with ` + "`r.Link(\"Index\", column, \"\", \"\")`" + `,
   or every page at once with ` + "`r.Links(router.LinksOptions{Positions: columns})`" + `.
4. **queries**: with ` + "`query_keyword = \"route\"`" + ` the current page is kept in
   the URL, e.g. ` + "`?route=Queries`" + `.

Please choose a page in the sidebar menu.
`

const queriesText = `
# Queries

Here we inspect and modify the URL query. Changing a value updates the URL
without reloading the page.

Try to edit the values below, or directly in the URL. The new route is only
picked up on the next run, e.g. when a button is pressed.
`

const linksText = `
# Links

This page links to every page in the header. Links can also go in the
sidebar, or anywhere else.

Below are links to a single page.
`

// demoApp builds the demo: three pages, sidebar navigation and the router
// rendering the current page.
func demoApp(cfg config.Config) web.App {
	return func(c *web.Cycle) error {
		r := router.New(c.Query, c.Session, c.Main, router.Options{
			QueryKeyword: string(cfg.QueryKeyword),
			Printer:      c.Printer,
			Logger:       c.Logger,
		})

		r.RegisterIndex("Index", func() error {
			c.Main.Markdown("# Index page")
			c.Main.Info("Welcome to a simple demonstration of page routing.")
			c.Main.Markdown(indexText)
			return nil
		})
		r.Register("Queries", func() error {
			queriesPage(c)
			return nil
		})
		// Pages do not have to go through Register.
		r.Routes.Set("Links", func() error {
			linksPage(c, r)
			return nil
		})

		if cfg.Index != "" {
			r.Index = cfg.Index
		}

		c.Sidebar.Markdown("# Router demonstration")
		for _, nav := range []struct {
			method constants.NavigationMethod
			label  string
		}{
			{constants.NavigationSelect, "Navigate by selectbox"},
			{constants.NavigationRadio, "Navigate by radio buttons"},
		} {
			if _, err := r.Navigate(nav.method, c.Sidebar, nav.label); err != nil {
				c.Logger.Warn("navigation widget", "error", err)
			}
		}
		c.Sidebar.Markdown("*Explicit link*")
		c.Sidebar.Button("Index", "sidebar_index", func() { r.SetRoute("Index") })

		return r.Render()
	}
}

// queriesPage edits the query store directly. Edits show in the URL at once
// but the router only reads them on the next cycle.
func queriesPage(c *web.Cycle) {
	c.Main.Markdown(queriesText)

	for _, key := range c.Query.Keys() {
		value, _ := c.Query.Get(key)
		cols := c.Main.Columns(10, 3)
		cols[0].TextInput(fmt.Sprintf("Content of %q", key), "inp_"+key, value, func(v string) {
			c.Query.Set(key, v)
		})
		cols[1].Button(fmt.Sprintf("Delete %q", key), "del_"+key, func() {
			c.Query.Delete(key)
		})
	}

	cols := c.Main.Columns(3, 7, 3)
	key := cols[0].TextInput("key", "new_query_key", "new_query", nil)
	value := cols[1].TextInput("value", "new_query_value", "", nil)
	cols[2].Button(fmt.Sprintf("Add %q", key), "add_query", func() {
		c.Query.Set(key, value)
	})

	c.Main.Button("Re-run!", "rerun", nil)
}

func linksPage(c *web.Cycle, r *router.Router) {
	keys := r.Routes.Keys()
	weights := make([]int, len(keys))
	for i, key := range keys {
		weights[i] = len(key) + 6
	}
	header := c.Main.Columns(weights...)
	positions := make([]router.Surface, len(header))
	for i, col := range header {
		positions[i] = col
	}
	r.Links(router.LinksOptions{Positions: positions})
	c.Main.Markdown("---")

	c.Main.Markdown(linksText)

	cols := c.Main.Columns(4, 6, 10, 15)
	r.Link("Index", cols[0], "", "")
	cols[1].Button("Goto Index", "goto_index", func() { r.SetRoute("Index") })
	cols[2].Button("Self referential...", "self_link", func() { r.SetRoute("Links") })
}
