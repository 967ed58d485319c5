// Package restapi serves the number speller over HTTP as JSON.
package restapi

import (
	"github.com/leoconst/number-string/internal/app"
)

// RestAPI holds the handlers' shared application dependencies.
type RestAPI struct {
	App *app.Application
}

// New creates a RestAPI backed by app.
func New(application *app.Application) *RestAPI {
	return &RestAPI{App: application}
}
