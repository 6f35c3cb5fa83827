package router

import (
	"net/url"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/state"
)

// event is one call recorded by fakeSurface.
type event struct {
	Kind     string
	Text     string
	Label    string
	Key      string
	Options  []string
	Selected string
}

// fakeSurface records what the router draws and keeps widget callbacks by key
// so tests can play the part of the user.
type fakeSurface struct {
	name    string
	events  []event
	clicks  map[string]func()
	changes map[string]func(string)
}

func newFakeSurface(name string) *fakeSurface {
	return &fakeSurface{
		name:    name,
		clicks:  make(map[string]func()),
		changes: make(map[string]func(string)),
	}
}

func (f *fakeSurface) String() string { return f.name }

func (f *fakeSurface) Info(text string) { f.events = append(f.events, event{Kind: "info", Text: text}) }
func (f *fakeSurface) Warning(text string) { f.events = append(f.events, event{Kind: "warning", Text: text}) }
func (f *fakeSurface) Error(text string) { f.events = append(f.events, event{Kind: "error", Text: text}) }

func (f *fakeSurface) Button(label, key string, onClick func()) {
	f.events = append(f.events, event{Kind: "button", Label: label, Key: key})
	f.clicks[key] = onClick
}

func (f *fakeSurface) Select(label, key string, options []string, selected string, onChange func(string)) {
	f.events = append(f.events, event{Kind: "select", Label: label, Key: key, Options: options, Selected: selected})
	f.changes[key] = onChange
}

func (f *fakeSurface) Radio(label, key string, options []string, selected string, onChange func(string)) {
	f.events = append(f.events, event{Kind: "radio", Label: label, Key: key, Options: options, Selected: selected})
	f.changes[key] = onChange
}

func (f *fakeSurface) ofKind(kind string) []event {
	var out []event
	for _, e := range f.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// fixture bundles the stores and surface of one user session.
type fixture struct {
	query   *state.Query
	session *state.Session
	ui      *fakeSurface
}

func newFixture() *fixture {
	return &fixture{
		query:   state.NewQuery(url.Values{}),
		session: state.NewSession(),
		ui:      newFakeSurface("main"),
	}
}

// cycle builds a fresh router the way a host does on every render cycle,
// with the "Index" and "Queries" pages registered.
func (fx *fixture) cycle(keyword string, rendered *[]string) *Router {
	fx.ui.events = nil
	r := New(fx.query, fx.session, fx.ui, Options{QueryKeyword: keyword})
	r.Register("Index", func() error {
		if rendered != nil {
			*rendered = append(*rendered, "Index")
		}
		return nil
	})
	r.Register("Queries", func() error {
		if rendered != nil {
			*rendered = append(*rendered, "Queries")
		}
		return nil
	})
	return r
}

func (fx *fixture) sessionRoute() any {
	v, _ := fx.session.Get("zap_route")
	return v
}
