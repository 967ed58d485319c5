package restapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpellHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/spell/1234?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	spelling := spellingFromData(t, model.Data)
	assert.Equal(t, "1234", spelling.Input)
	assert.Equal(t, "one thousand, two hundred and thirty-four", spelling.Words)
}

func TestSpellHandlerConjunctionOverride(t *testing.T) {
	_, model := serveAndRetrieveEndpoint(t, "/api/spell/1234?key=TEST&and=false")

	spelling := spellingFromData(t, model.Data)
	assert.Equal(t, "one thousand, two hundred thirty-four", spelling.Words)
}

func TestSpellHandlerDecimal(t *testing.T) {
	_, model := serveAndRetrieveEndpoint(t, "/api/spell/12.34?key=TEST")

	spelling := spellingFromData(t, model.Data)
	assert.Equal(t, "twelve point three four", spelling.Words)
}

func TestSpellHandlerNegative(t *testing.T) {
	_, model := serveAndRetrieveEndpoint(t, "/api/spell/-42?key=TEST")

	spelling := spellingFromData(t, model.Data)
	assert.Equal(t, "minus forty-two", spelling.Words)
}

func TestSpellHandlerRejectsMalformedNumber(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/spell/abc?key=TEST")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, http.StatusBadRequest, model.Code)
	assert.Contains(t, model.Text, "cannot parse number")
}

func TestSpellHandlerRejectsBadConjunctionParameter(t *testing.T) {
	resp, _ := serveAndRetrieveEndpoint(t, "/api/spell/42?key=TEST&and=maybe")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSpellHandlerRequiresAPIKey(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/spell/42")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestSpellRandomHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/spell-random?key=TEST&maxDigits=6")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	spelling := spellingFromData(t, model.Data)
	require.NotEmpty(t, spelling.Input)
	assert.NotEmpty(t, spelling.Words)
}

func TestSpellRandomHandlerRejectsBadBound(t *testing.T) {
	resp, _ := serveAndRetrieveEndpoint(t, "/api/spell-random?key=TEST&maxDigits=zero")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMaxHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/max?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	spelling := spellingFromData(t, model.Data)
	assert.Len(t, spelling.Input, 102)
	assert.True(t, strings.HasPrefix(spelling.Words, "nine hundred and ninety-nine duotrigintillion"))
}
