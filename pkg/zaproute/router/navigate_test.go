package router

import (
	"testing"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_Defaults(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)

	r.Link("Queries", nil, "", "")

	buttons := fx.ui.ofKind("button")
	require.Len(t, buttons, 1)
	assert.Equal(t, "Queries", buttons[0].Label)
	assert.Equal(t, "link2Queries", buttons[0].Key)

	fx.ui.clicks["link2Queries"]()
	assert.Equal(t, "Queries", fx.sessionRoute())
	assert.Equal(t, "route=Queries", fx.query.Encode())
}

func TestLink_CustomPositionLabelAndKey(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)
	column := newFakeSurface("col1")

	r.Link("Index", column, "Goto Index", "home")

	assert.Empty(t, fx.ui.events)
	require.Len(t, column.events, 1)
	assert.Equal(t, event{Kind: "button", Label: "Goto Index", Key: "home"}, column.events[0])
}

func TestLink_UnregisteredRouteClickIsNoop(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)

	r.Link("Ghost", nil, "", "")
	fx.ui.clicks["link2Ghost"]()

	assert.Nil(t, fx.sessionRoute())
	assert.Equal(t, "", fx.query.Encode())
}

func TestLinks_Defaults(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)

	r.Links(LinksOptions{})

	buttons := fx.ui.ofKind("button")
	require.Len(t, buttons, 2)
	assert.Equal(t, "Index", buttons[0].Label)
	assert.Equal(t, "links2Indexmain", buttons[0].Key)
	assert.Equal(t, "Queries", buttons[1].Label)
	assert.Equal(t, "links2Queriesmain", buttons[1].Key)
}

func TestLinks_PerRoutePositions(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)
	c1, c2 := newFakeSurface("c1"), newFakeSurface("c2")

	r.Links(LinksOptions{Positions: []Surface{c1, c2}, Labels: []string{"Home", "Params"}})

	require.Len(t, c1.events, 1)
	require.Len(t, c2.events, 1)
	assert.Equal(t, event{Kind: "button", Label: "Home", Key: "links2Indexc1"}, c1.events[0])
	assert.Equal(t, event{Kind: "button", Label: "Params", Key: "links2Queriesc2"}, c2.events[0])

	c2.clicks["links2Queriesc2"]()
	assert.Equal(t, "Queries", fx.sessionRoute())
}

func TestLinks_ShortestListWins(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)
	shared := newFakeSurface("header")

	r.Links(LinksOptions{
		Routes:   []string{"Index", "Queries", "Index"},
		Position: shared,
		Keys:     []string{"a", "b"},
	})

	require.Len(t, shared.events, 2)
	assert.Equal(t, "a", shared.events[0].Key)
	assert.Equal(t, "b", shared.events[1].Key)
}

func TestNavigate_Methods(t *testing.T) {
	tests := []struct {
		method constants.NavigationMethod
		kind   string
	}{
		{constants.NavigationSelect, "select"},
		{constants.NavigationRadio, "radio"},
		{"", "radio"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+string(tt.method), func(t *testing.T) {
			fx := newFixture()
			fx.session.Set("zap_route", "Queries")
			r := fx.cycle("route", nil)
			sidebar := newFakeSurface("sidebar")

			nav, err := r.Navigate(tt.method, sidebar, "Pick")
			require.NoError(t, err)

			widgets := sidebar.ofKind(tt.kind)
			require.Len(t, widgets, 1)
			assert.Equal(t, "Pick", widgets[0].Label)
			assert.Equal(t, []string{"Index", "Queries"}, widgets[0].Options)
			assert.Equal(t, "Queries", widgets[0].Selected)
			assert.Equal(t, nav.Key, widgets[0].Key)
			assert.Equal(t, "router_choose_"+string(nav.Method)+"_Pick", nav.Key)

			sidebar.changes[nav.Key]("Index")
			assert.Equal(t, "Index", fx.sessionRoute())
			assert.Equal(t, "route=Index", fx.query.Encode())
		})
	}
}

func TestNavigate_DefaultLabelAndPosition(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)

	nav, err := r.Navigate(constants.NavigationSelect, nil, "")
	require.NoError(t, err)

	assert.Equal(t, "Navigate routes", nav.Label)
	assert.Equal(t, "router_choose_selectbox_Navigate routes", nav.Key)
	assert.Len(t, fx.ui.ofKind("select"), 1)
}

func TestNavigate_SpecDrawsNothing(t *testing.T) {
	fx := newFixture()
	r := fx.cycle("route", nil)

	nav, err := r.Navigate(constants.NavigationSpec, nil, "Pick")
	require.NoError(t, err)

	assert.Empty(t, fx.ui.events)
	assert.Equal(t, "Index", nav.Selected)
	assert.Equal(t, []string{"Index", "Queries"}, nav.Options)

	nav.OnChange("Queries")
	assert.Equal(t, "Queries", fx.sessionRoute())
}

func TestNavigate_UnknownMethod(t *testing.T) {
	fx := newFixture()
	var rendered []string
	r := fx.cycle("route", &rendered)

	_, err := r.Navigate("dropdown", nil, "Pick")
	require.ErrorIs(t, err, ErrUnknownMethod)

	errs := fx.ui.ofKind("error")
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid choosing method chosen", errs[0].Text)

	require.NoError(t, r.Render())
	assert.Equal(t, []string{"Index"}, rendered)
}

func TestNavigate_UnregisteredCurrentRouteLeavesSelectionEmpty(t *testing.T) {
	fx := newFixture()
	fx.query.Set("route", "Ghost")
	r := fx.cycle("route", nil)

	nav, err := r.Navigate(constants.NavigationRadio, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "", nav.Selected)
}
