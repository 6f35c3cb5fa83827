// Package web runs re-run-on-interaction pages in a browser.
//
// Every GET is one render cycle: the App runs top to bottom and draws into the
// Main and Sidebar containers, which are then written out as HTML. Widgets are
// small forms. Posting one runs the callback the widget was drawn with in the
// previous cycle and redirects back to the page, which starts the next cycle.
//
// Each browser session, identified by a cookie, owns a session store and a
// query store. The query store is loaded from the URL at the start of every
// cycle; when the app changes it, the new URL is put in the address bar with
// history.replaceState, so no reload happens.
//
// Cycles of one session are serialised. Sessions never share stores.
package web
