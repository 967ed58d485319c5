package restapi

import (
	"net/http"

	"github.com/leoconst/number-string/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized envelope.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusUnauthorized, "permission denied"))
}

// badRequestResponse sends a 400 envelope carrying the validation
// error's message, e.g. a parse or magnitude failure.
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusBadRequest, err.Error()))
}

// serverErrorResponse sends a 500 envelope and logs the cause.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.App.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}
