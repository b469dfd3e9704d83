package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kickabout_server/auth"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Room history replay must sit behind the bearer-token guard; it is the
// compensating control for the relay's unauthenticated joinRoom.
func TestRoomHistoryRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.Init())

	r := mux.NewRouter()
	RegisterMatchRoutes(r, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/m1/messages", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMutatingMatchRoutesRequireToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.Init())

	r := mux.NewRouter()
	RegisterMatchRoutes(r, nil, nil)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/matches/create"},
		{http.MethodPut, "/api/matches/join/m1"},
		{http.MethodPut, "/api/matches/quit/m1"},
		{http.MethodDelete, "/api/matches/m1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equalf(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}
