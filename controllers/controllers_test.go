package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// The validation paths below fail before any store access, so the
// controllers can run without a live DynamoDB behind them.

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	c := NewUserController(nil, nil)
	rr := postJSON(t, c.Register, "/api/users/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterRejectsUnknownLevel(t *testing.T) {
	c := NewUserController(nil, nil)
	rr := postJSON(t, c.Register, "/api/users/register",
		`{"fullname":"Sam","email":"sam@example.com","password":"pw","birthdate":"1995-04-12","level":"Legendary"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid level")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	c := NewUserController(nil, nil)
	rr := postJSON(t, c.Register, "/api/users/register", `{"email":"sam@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	c := NewUserController(nil, nil)
	rr := postJSON(t, c.Login, "/api/users/login", `{"email":"sam@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateMatchRejectsMissingCreator(t *testing.T) {
	c := NewMatchController(nil)
	rr := postJSON(t, c.CreateMatch, "/api/matches/create",
		`{"location":"Riverside pitch","date":"2031-05-01","time":"18:30"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "creator ID is required")
}

func TestCreateMatchRejectsBadSchedule(t *testing.T) {
	c := NewMatchController(nil)
	rr := postJSON(t, c.CreateMatch, "/api/matches/create",
		`{"location":"Riverside pitch","date":"01/05/2031","time":"18:30","creatorId":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestJoinMatchRejectsMissingUser(t *testing.T) {
	c := NewMatchController(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/matches/join/m1", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"id": "m1"})
	rr := httptest.NewRecorder()
	c.JoinMatch(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "userId is required")
}

func TestParticipantsRejectsInvalidMatchID(t *testing.T) {
	c := NewMatchController(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/not-a-uuid/participants", nil)
	req = mux.SetURLVars(req, map[string]string{"matchId": "not-a-uuid"})
	rr := httptest.NewRecorder()
	c.Participants(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid match ID")
}
