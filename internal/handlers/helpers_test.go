package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request with a JSON (or raw string) body and an optional {acno} route param.
func newRequest(t *testing.T, method, target, acno string, body any) *http.Request {
	t.Helper()

	var bodyBytes []byte
	switch v := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(v)
	default:
		var err error
		bodyBytes, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
	if acno != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("acno", acno)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
