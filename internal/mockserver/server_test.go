package mockserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomdesk/internal/mock"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store := mock.NewStore(zap.NewNop(), mock.WithLatency(0))
	return New(store, zap.NewNop())
}

type wireEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) (int, wireEnvelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env wireEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func login(t *testing.T, s *Server) string {
	t.Helper()
	status, env := doJSON(t, s, http.MethodPost, "/api/auth/login", "",
		map[string]string{"userId": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, status)
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestServer_LoginSuccessAndFailure(t *testing.T) {
	s := testServer(t)
	token := login(t, s)
	assert.Equal(t, "mock-jwt-token-1", token)

	status, env := doJSON(t, s, http.MethodPost, "/api/auth/login", "",
		map[string]string{"userId": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid credentials", env.Error)
}

func TestServer_LoginValidatesBody(t *testing.T) {
	s := testServer(t)
	status, env := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestServer_ProtectedRoutesRequireBearer(t *testing.T) {
	s := testServer(t)

	status, env := doJSON(t, s, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = doJSON(t, s, http.MethodGet, "/api/customers", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestServer_ListUsesPerEntityPageKeys(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, env := doJSON(t, s, http.MethodGet, "/api/customers?page=1&limit=2", token, nil)
	require.Equal(t, http.StatusOK, status)

	var page struct {
		Customers  []json.RawMessage `json:"customers"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Customers, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestServer_CreateThenGetCustomer(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, env := doJSON(t, s, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Jung Dasom", "phone": "010-7777-8888", "address": "Mapo-gu, Seoul",
	})
	require.Equal(t, http.StatusOK, status)

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 4, created.ID)

	status, env = doJSON(t, s, http.MethodGet, "/api/customers/4", token, nil)
	require.Equal(t, http.StatusOK, status)
	var got struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Jung Dasom", got.Name)
}

func TestServer_ValidationReturns400(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, env := doJSON(t, s, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "X", "phone": "bad",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "phone")
}

func TestServer_ErrorKindsMapToStatuses(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, _ := doJSON(t, s, http.MethodGet, "/api/customers/999", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env := doJSON(t, s, http.MethodPost, "/api/contracts", token, map[string]any{
		"customerId": 999, "roomId": 1,
		"startDate": "2026-03-01T00:00:00Z", "endDate": "2027-02-28T00:00:00Z",
		"monthlyRent": 800000, "deposit": 10000000,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestServer_LogoutAndDashboard(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, env := doJSON(t, s, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	var stats struct {
		TotalRooms int `json:"totalRooms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 3, stats.TotalRooms)

	status, _ = doJSON(t, s, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_RoomsAvailabilityFilter(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	status, env := doJSON(t, s, http.MethodGet, "/api/rooms?available=false", token, nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Rooms []struct {
			RoomNumber string `json:"roomNumber"`
		} `json:"rooms"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "102", page.Rooms[0].RoomNumber)
}
