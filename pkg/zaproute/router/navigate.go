package router

import (
	"fmt"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
)

// Link draws a button at position that switches to route when pressed.
// position defaults to the router's surface, label to the route and key to
// "link2<route>".
func (r *Router) Link(route string, position Surface, label, key string) {
	if position == nil {
		position = r.ui
	}
	if label == "" {
		label = route
	}
	if key == "" {
		key = constants.LinkKeyPrefix + route
	}
	position.Button(label, key, func() { r.SetRoute(route) })
}

// LinksOptions configures Links. Nil slices take their defaults.
type LinksOptions struct {
	Routes    []string  // Defaults to every registered route in order
	Position  Surface   // Shared position used when Positions is nil
	Positions []Surface // One position per route
	Labels    []string  // Defaults to the routes
	Keys      []string  // Defaults to "links2<route><position>"
}

// Links draws one Link per route. The lists are walked in step and the
// shortest one decides how many links are drawn.
func (r *Router) Links(opts LinksOptions) {
	routes := opts.Routes
	if routes == nil {
		routes = r.Routes.Keys()
	}

	labels := opts.Labels
	if labels == nil {
		labels = routes
	}

	positions := opts.Positions
	if positions == nil {
		shared := opts.Position
		if shared == nil {
			shared = r.ui
		}
		positions = make([]Surface, len(routes))
		for i := range positions {
			positions[i] = shared
		}
	}

	keys := opts.Keys
	if keys == nil {
		keys = make([]string, min(len(routes), len(positions)))
		for i := range keys {
			keys[i] = constants.LinksKeyPrefix + routes[i] + positionName(positions[i])
		}
	}

	n := min(len(routes), len(positions), len(labels), len(keys))
	for i := 0; i < n; i++ {
		r.Link(routes[i], positions[i], labels[i], keys[i])
	}
}

// Navigation describes a navigation widget: every registered route as an
// option, the current route selected, and SetRoute as the change callback.
type Navigation struct {
	Method   constants.NavigationMethod
	Label    string
	Key      string
	Options  []string
	Selected string // Empty when the current route is not registered
	OnChange func(route string)
}

// Navigate draws a select or radio widget listing every route at position.
// NavigationSpec draws nothing and only returns the description. An unknown
// method shows an error notice and returns ErrUnknownMethod; the cycle is not
// aborted.
func (r *Router) Navigate(method constants.NavigationMethod, position Surface, label string) (Navigation, error) {
	if method == "" {
		method = constants.NavigationRadio
	}
	if position == nil {
		position = r.ui
	}
	if label == "" {
		label = constants.DefaultNavigateLabel
	}

	route := r.Current()

	nav := Navigation{
		Method:   method,
		Label:    label,
		Key:      constants.NavigateKeyPrefix + string(method) + "_" + label,
		Options:  r.Routes.Keys(),
		OnChange: r.SetRoute,
	}
	if r.Routes.Has(route) {
		nav.Selected = route
	}

	if !method.IsValid() {
		r.logger.Warn("unknown navigation method", "method", string(method))
		r.ui.Error(r.printer.InvalidMethod())
		return nav, fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}

	switch method {
	case constants.NavigationSelect:
		position.Select(nav.Label, nav.Key, nav.Options, nav.Selected, nav.OnChange)
	case constants.NavigationRadio:
		position.Radio(nav.Label, nav.Key, nav.Options, nav.Selected, nav.OnChange)
	}
	return nav, nil
}

func positionName(position Surface) string {
	if s, ok := position.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", position)
}
