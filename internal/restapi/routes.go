package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Router builds the API's handler chain: httprouter for path matching,
// API-key validation per route, request logging around the whole mux.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/spell/:number", api.requireAPIKey(api.spellHandler))
	router.HandlerFunc(http.MethodGet, "/api/spell-random", api.requireAPIKey(api.spellRandomHandler))
	router.HandlerFunc(http.MethodGet, "/api/max", api.requireAPIKey(api.maxHandler))

	return NewRequestLoggingMiddleware(api.App.Logger)(router)
}

func (api *RestAPI) requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.App.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		next(w, r)
	}
}
