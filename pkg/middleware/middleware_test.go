package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecoverKeepsServing(t *testing.T) {
	calls := 0
	handler := middleware.Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["message"])

	// The panic does not take the handler down
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHeaderHandling(t *testing.T) {
	const secret = "middleware-test-secret"

	var gotID uuid.UUID
	var gotAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotAdmin = utils.GetIsAdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Auth(secret, zap.NewNop())(next)

	// Missing header
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unparseable token
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.TokenHeader, "garbage")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Valid token lands the claims on the context
	userID := uuid.New()
	token, err := utils.GenerateAuthToken(secret, userID, true)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.TokenHeader, token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.True(t, gotAdmin)
}

func TestAdminGate(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Admin(zap.NewNop())(next)

	// No identity on the context at all
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not admin
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), false))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin passes
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), true))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
