package authhandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekuzmina/link-shortener/internal/app/auth"
	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.ConfigType{SecretKey: "test-secret"}
	handler := NewSessionHandler(cfg, zap.NewNop().Sugar())

	router := gin.New()
	router.POST("/api/auth/session", handler.CreateSession)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/session", nil)
	router.ServeHTTP(w, r)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.NotEmpty(t, resp.UserID)

	var sessionCookie *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == auth.CookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "expected session cookie to be set")
	assert.True(t, sessionCookie.HttpOnly)

	claims, err := auth.ParseToken(sessionCookie.Value, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
}
