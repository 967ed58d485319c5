package app

import "net/http"

// RequestHasInvalidAPIKey checks the key query parameter of a request.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get("key"))
}

// IsInvalidAPIKey reports whether key is rejected by the configured key
// list. With no keys configured the API is open and nothing is rejected.
func (app *Application) IsInvalidAPIKey(key string) bool {
	validKeys := app.Config.APIKeys
	if len(validKeys) == 0 {
		return false
	}

	for _, validKey := range validKeys {
		if key == validKey {
			return false
		}
	}
	return true
}
