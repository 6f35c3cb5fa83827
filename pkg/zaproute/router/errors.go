package router

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod indicates Navigate was asked for an unsupported widget.
// It is reported on the page and returned; the render cycle carries on.
var ErrUnknownMethod = errors.New("router: unknown navigation method")

// RenderError wraps a failure returned by a registered page. It is fatal for
// the render cycle and is left to the host to report.
type RenderError struct {
	Route string // Route whose page failed
	Err   error  // Error returned by the page
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: render %q: %v", e.Route, e.Err)
	}
	return fmt.Sprintf("router: render %q", e.Route)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IsRenderError checks if an error came from a registered page.
func IsRenderError(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}
