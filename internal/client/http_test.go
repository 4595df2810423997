package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomdesk/internal/config"
	"roomdesk/internal/domain"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.APIBaseURL = baseURL
	cfg.HTTPTimeout = 2 * time.Second
	return cfg
}

func testTokens(t *testing.T) *TokenStore {
	t.Helper()
	tokens, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)
	return tokens
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestHTTP_BearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		gotRequestID.Store(r.Header.Get("X-Request-ID"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"id":1,"username":"admin","email":"a@b.c","role":"admin","name":"Administrator"}}`)
	}))
	defer srv.Close()

	tokens := testTokens(t)
	require.NoError(t, tokens.SetToken("tok-123"))
	api := NewHTTP(testConfig(srv.URL), tokens, zap.NewNop())

	u, err := api.Auth.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "Bearer tok-123", gotAuth.Load())
	assert.NotEmpty(t, gotRequestID.Load())
}

func TestHTTP_NoBearerWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())
	_, err := api.Branches.List(context.Background())
	require.NoError(t, err)
}

func TestHTTP_ListDecodesPerEntityPageKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Kim", r.URL.Query().Get("search"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{
			"customers":[{"id":11,"name":"Kim Chulsoo","phone":"010-1234-5678","address":"Seoul"}],
			"total":11,"page":2,"totalPages":2}}`)
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL+"/api"), testTokens(t), zap.NewNop())
	page, err := api.Customers.List(context.Background(), 2, 10, "Kim")
	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Kim Chulsoo", page.Items[0].Name)
}

func TestHTTP_ErrorKindMapping(t *testing.T) {
	status := make(chan int, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, <-status, `{"success":false,"error":"it broke"}`)
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())
	ctx := context.Background()

	status <- http.StatusNotFound
	_, err := api.Customers.Get(ctx, 1)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "it broke", err.Error())

	status <- http.StatusConflict
	_, err = api.Customers.Get(ctx, 1)
	assert.True(t, domain.IsConflict(err))

	status <- http.StatusInternalServerError
	_, err = api.Customers.Get(ctx, 1)
	assert.True(t, domain.IsUnexpected(err))
}

func TestHTTP_UnstructuredErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nginx</html>"))
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())
	_, err := api.Customers.Get(context.Background(), 1)
	assert.True(t, domain.IsTransport(err))
}

func TestHTTP_ConnectionFailureIsTransport(t *testing.T) {
	api := NewHTTP(testConfig("http://127.0.0.1:1"), testTokens(t), zap.NewNop())
	_, err := api.Dashboard.Stats(context.Background())
	assert.True(t, domain.IsTransport(err))
}

func TestHTTP_UnauthorizedClearsTokenAndFiresOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, `{"success":false,"error":"token expired"}`)
	}))
	defer srv.Close()

	tokens := testTokens(t)
	require.NoError(t, tokens.SetToken("stale"))
	api := NewHTTP(testConfig(srv.URL), tokens, zap.NewNop())

	var fired atomic.Int32
	api.OnUnauthorized(func() { fired.Add(1) })

	_, err := api.Customers.Get(context.Background(), 1)
	assert.True(t, domain.IsAuth(err))
	assert.Empty(t, tokens.Token())
	assert.Equal(t, int32(1), fired.Load())

	_, _ = api.Customers.Get(context.Background(), 1)
	assert.Equal(t, int32(1), fired.Load(), "handler must not refire")
}

func TestHTTP_SuccessfulLoginRearmsUnauthorizedHandler(t *testing.T) {
	authorized := atomic.Bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			authorized.Store(true)
			writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"token":"fresh","user":{"id":1,"username":"admin","email":"a@b.c","role":"admin","name":"A"}}}`)
			return
		}
		if authorized.Load() {
			writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"id":1,"name":"Kim","phone":"010-1234-5678","address":"Seoul"}}`)
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, `{"success":false,"error":"token expired"}`)
	}))
	defer srv.Close()

	tokens := testTokens(t)
	api := NewHTTP(testConfig(srv.URL), tokens, zap.NewNop())

	var fired atomic.Int32
	api.OnUnauthorized(func() { fired.Add(1) })

	_, _ = api.Customers.Get(context.Background(), 1)
	require.Equal(t, int32(1), fired.Load())

	_, err := api.Auth.Login(context.Background(), domain.LoginInput{UserID: "admin", Password: "admin"})
	require.NoError(t, err)

	authorized.Store(false)
	_, _ = api.Customers.Get(context.Background(), 1)
	assert.Equal(t, int32(2), fired.Load(), "a fresh login re-arms the handler")
}

func TestHTTP_ValidationBlocksBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{}}`)
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())

	_, err := api.Customers.Create(context.Background(), domain.CustomerInput{Name: "X"})
	require.Error(t, err)
	assert.Equal(t, int32(0), hits.Load())

	bad := "not-a-phone"
	_, err = api.Customers.Update(context.Background(), 1, domain.CustomerPatch{Phone: &bad})
	require.Error(t, err)
	assert.Equal(t, int32(0), hits.Load())
}

func TestHTTP_MalformedSuccessBodyIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())
	_, err := api.Dashboard.Stats(context.Background())
	assert.True(t, domain.IsTransport(err))
}

func TestHTTP_CreateSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var in domain.CustomerInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Kim Chulsoo", in.Name)
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"id":7,"name":"Kim Chulsoo","phone":"010-1234-5678","address":"Seoul"}}`)
	}))
	defer srv.Close()

	api := NewHTTP(testConfig(srv.URL), testTokens(t), zap.NewNop())
	out, err := api.Customers.Create(context.Background(), domain.CustomerInput{
		Name: "Kim Chulsoo", Phone: "010-1234-5678", Address: "Seoul",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
}
