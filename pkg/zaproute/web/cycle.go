package web

import (
	"log/slog"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/internal"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/messages"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/state"
)

// App draws one render cycle. It runs top to bottom on every interaction.
// A returned error aborts the cycle and is reported to the browser.
type App func(c *Cycle) error

// Cycle is what an App sees during one render.
type Cycle struct {
	Main    *Container
	Sidebar *Container

	Query   *state.Query
	Session *state.Session
	Printer *messages.Printer
	Logger  *slog.Logger

	widgets map[string]*widget
}

// NewCycle prepares a cycle over the given stores. The server does this for
// every request; it is exported so apps can be driven directly in tests.
func NewCycle(query *state.Query, session *state.Session, printer *messages.Printer, logger *slog.Logger) *Cycle {
	if printer == nil {
		printer = messages.Default()
	}
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	c := &Cycle{
		Query:   query,
		Session: session,
		Printer: printer,
		Logger:  logger,
		widgets: make(map[string]*widget),
	}
	c.Main = newContainer("main", c)
	c.Sidebar = newContainer("sidebar", c)
	return c
}

// Press activates the widget drawn under key with value, as a posted form
// would, and reports whether its callback ran.
func (c *Cycle) Press(key, value string) bool {
	w, ok := c.widgets[key]
	if !ok {
		return false
	}
	return w.activate(value, c.Session)
}

func (c *Cycle) register(w *widget) bool {
	if _, dup := c.widgets[w.key]; dup {
		c.Logger.Warn("duplicate widget key", "key", w.key)
		return false
	}
	c.widgets[w.key] = w
	return true
}
