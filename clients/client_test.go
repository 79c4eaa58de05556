package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/paygate/types"
)

func TestPostTransaction(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"Approved","result_code":"A","refnum":"100001","authcode":"012345"}`))
	}))
	defer srv.Close()

	c := New(types.Environment(srv.URL), nil, 5*time.Second)

	body := map[string]any{
		"command":    "sale",
		"amount":     "1.00",
		"creditcard": map[string]any{"number": "4111111111111111"},
	}
	resp, err := c.PostTransaction(context.Background(), "Basic dGVzdA==", body)
	require.NoError(t, err)

	assert.Equal(t, "Basic dGVzdA==", gotAuth)
	assert.Equal(t, "sale", gotBody["command"])
	assert.Equal(t, "Approved", resp.Result)
	assert.Equal(t, "100001", resp.RefNum)
	assert.True(t, resp.Approved())
}

func TestPostTransaction_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key","error_code":"401"}`))
	}))
	defer srv.Close()

	c := New(types.Environment(srv.URL), nil, 5*time.Second)

	_, err := c.PostTransaction(context.Background(), "Basic bogus", map[string]any{})
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Equal(t, "Invalid API key", reqErr.ErrorDetails["error"])
}

func TestPostTransaction_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(types.Environment(srv.URL), nil, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.PostTransaction(ctx, "Basic dGVzdA==", map[string]any{})
	assert.Error(t, err)
}

func TestNew_CustomHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"Approved","result_code":"A"}`))
	}))
	defer srv.Close()

	c := New(types.Environment(srv.URL), srv.Client(), time.Second)
	resp, err := c.PostTransaction(context.Background(), "Basic dGVzdA==", map[string]any{})
	require.NoError(t, err)
	assert.True(t, resp.Approved())
}

// Some gateway endpoints reply with JSON bodies but a text/plain Content-Type;
// the decode must not depend on the advertised type.
func TestPostTransaction_DecodesWithoutJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(`{"result":"Approved","result_code":"A","refnum":"100002"}`))
	}))
	defer srv.Close()

	c := New(types.Environment(srv.URL), nil, 5*time.Second)

	resp, err := c.PostTransaction(context.Background(), "Basic dGVzdA==", map[string]any{})
	require.NoError(t, err)
	assert.True(t, resp.Approved())
	assert.Equal(t, "100002", resp.RefNum)
}
