package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leoconst/number-string/internal/app"
	"github.com/leoconst/number-string/internal/appconf"
	"github.com/leoconst/number-string/internal/models"
	"github.com/leoconst/number-string/internal/randnum"
	"github.com/leoconst/number-string/internal/words"
)

// createTestAPI creates a RestAPI with an API key of "TEST" and a
// seeded random generator.
func createTestAPI(t *testing.T) *RestAPI {
	t.Helper()

	cfg := appconf.Default()
	cfg.APIKeys = []string{"TEST"}

	application := &app.Application{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Speller: &words.Speller{UseAnd: cfg.UseAnd},
		Random:  randnum.NewSeeded(1),
	}
	return New(application)
}

// serveAndRetrieveEndpoint makes a request against a test server and
// decodes the response envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	api := createTestAPI(t)
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	return resp, model
}

// spellingFromData re-decodes the envelope's untyped data field.
func spellingFromData(t *testing.T, data any) models.SpellingModel {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var spelling models.SpellingModel
	require.NoError(t, json.Unmarshal(raw, &spelling))
	return spelling
}
