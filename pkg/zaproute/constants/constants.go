// Package constants defines shared constants, types, and configuration values
// used throughout the zaproute page router.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level when set.
const LogLevelEnvVar = "ZAPROUTE_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// DefaultQueryKeyword is the query parameter used when query sync is switched on
// without naming a keyword.
const DefaultQueryKeyword = "route"

// SessionRouteKey is the session store key holding the session-resolved route.
const SessionRouteKey = "zap_route"

// DefaultNavigateLabel labels navigation widgets created without a label.
const DefaultNavigateLabel = "Navigate routes"

// Widget key prefixes for navigation helpers.
const (
	LinkKeyPrefix     = "link2"
	LinksKeyPrefix    = "links2"
	NavigateKeyPrefix = "router_choose_"
)

// NavigationMethod selects the widget used by Navigate.
type NavigationMethod string

const (
	NavigationRadio  NavigationMethod = "radio"     // Exclusive choice buttons
	NavigationSelect NavigationMethod = "selectbox" // Drop-down select
	NavigationSpec   NavigationMethod = "spec"      // Describe the widget without rendering it
)

func (m NavigationMethod) GetName() string {
	switch m {
	case NavigationRadio:
		return "Radio"
	case NavigationSelect:
		return "Select"
	case NavigationSpec:
		return "Spec"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is one of the supported navigation methods.
func (m NavigationMethod) IsValid() bool {
	return m.GetName() != "Unknown"
}

// Default host settings.
const (
	DefaultAddr       = ":8501"
	DefaultSessionTTL = 30 * time.Minute
	SessionCookieName = "zaproute_session"
	WidgetStatePrefix = "widget:"
)
