package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekuzmina/link-shortener/internal/app/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newAuthTestRouter(requireAuth bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()

	r := gin.New()
	r.Use(AuthMiddleware(testSecret, logger))

	handler := func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	}
	if requireAuth {
		r.GET("/protected", RequireAuth(), handler)
	} else {
		r.GET("/open", handler)
	}
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthTestRouter(false)

	token, err := auth.NewToken("user-1", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestAuthMiddleware_NoCookieProceedsAnonymously(t *testing.T) {
	r := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAuthMiddleware_InvalidTokenProceedsAnonymously(t *testing.T) {
	r := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAuthMiddleware_NoTokenIssued(t *testing.T) {
	r := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
}

func TestRequireAuth_Unauthorized(t *testing.T) {
	r := newAuthTestRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"User not authenticated"}`, w.Body.String())
}

func TestRequireAuth_WrongSecretRejected(t *testing.T) {
	r := newAuthTestRouter(true)

	token, err := auth.NewToken("user-1", "another-secret")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := newAuthTestRouter(true)

	token, err := auth.NewToken("user-1", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
