// Package routes describes HTTP routes and route groups independently of
// the multiplexer that serves them.
package routes

import (
	"net/http"

	"github.com/JaimeStill/offer-board/pkg/openapi"
)

// System collects routes and groups, then builds one handler from them and
// describes the documented ones in an OpenAPI spec.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Describe(spec *openapi.Spec) error
	Groups() []Group
	Routes() []Route
}
