package restapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/leoconst/number-string/internal/models"
	"github.com/leoconst/number-string/internal/words"
)

// spellHandler spells the number in the path, e.g. /api/spell/1234.
// The "and" query parameter overrides the configured conjunction.
func (api *RestAPI) spellHandler(w http.ResponseWriter, r *http.Request) {
	number := httprouter.ParamsFromContext(r.Context()).ByName("number")

	speller, err := api.requestSpeller(r)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	phrase, err := speller.Number(number)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.NewSpelling(number, phrase)))
}

// spellRandomHandler generates a random numeric string and spells it.
// maxDigits and maxDecimalDigits query parameters bound the string.
func (api *RestAPI) spellRandomHandler(w http.ResponseWriter, r *http.Request) {
	maxDigits, err := queryInt(r, "maxDigits", api.App.Config.MaxIntegerDigits)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	maxDecimals, err := queryInt(r, "maxDecimalDigits", api.App.Config.MaxDecimalDigits)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	speller, err := api.requestSpeller(r)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	number := api.App.Random.NumberString(maxDigits, maxDecimals)
	phrase, err := speller.Number(number)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.NewSpelling(number, phrase)))
}

// maxHandler spells the largest supported value.
func (api *RestAPI) maxHandler(w http.ResponseWriter, r *http.Request) {
	speller, err := api.requestSpeller(r)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	max := words.MaxValue()
	phrase, err := speller.Big(max)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.NewSpelling(max.String(), phrase)))
}

// requestSpeller returns the configured speller, with the conjunction
// overridden when the request carries an "and" query parameter.
func (api *RestAPI) requestSpeller(r *http.Request) (words.Speller, error) {
	speller := *api.App.Speller

	if value := r.URL.Query().Get("and"); value != "" {
		useAnd, err := strconv.ParseBool(value)
		if err != nil {
			return speller, fmt.Errorf("invalid and parameter: %q", value)
		}
		speller.UseAnd = useAnd
	}
	return speller, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, value)
	}
	return n, nil
}
