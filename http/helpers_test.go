package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feedbackd/backend/fbsrvc"
	fbhttp "github.com/feedbackd/backend/http"
)

const testSecret = "test-secret"

func setupServer(t *testing.T, apiSecret string) http.Handler {
	t.Helper()
	srvc := fbsrvc.NewFeedbackSrvc(fbsrvc.NewInMemRepo())
	server := fbhttp.NewHttpServer(srvc, apiSecret)
	return server.Router()
}

func newSubmitReq(t *testing.T, body map[string]interface{}, secret string) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/submit", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-API-Secret", secret)
	}
	return req
}

func newGetReq(t *testing.T, path string, secret string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if secret != "" {
		req.Header.Set("X-API-Secret", secret)
	}
	return req
}

func doReq(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err, "Response body: %s", w.Body.String())
	return body
}
