package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekuzmina/link-shortener/internal/app/auth"
	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/middleware"
	"github.com/ekuzmina/link-shortener/internal/app/qr"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/ekuzmina/link-shortener/internal/app/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer собирает полный стек сервиса поверх хранилища в памяти.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.ConfigType{
		BaseAddress: "http://localhost:8080",
		SecretKey:   "test-secret",
	}
	logger := zap.NewNop().Sugar()

	memStore := store.NewStore()
	shortenSvc := service.NewShortenService(memStore, qr.NewPNGEncoder())
	getSvc := service.NewGetURLService(memStore)
	deleteSvc := service.NewURLDeleter(memStore)

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg.SecretKey, logger))
	New(cfg, shortenSvc, getSvc, deleteSvc, nil, logger).RegisterRoutes(router)
	return router
}

func newSession(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/session", nil)
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not issued")
	return nil
}

type createResponse struct {
	ShortURL      service.ShortURLRecord `json:"short_url"`
	AlreadyExists bool                   `json:"already_exists"`
}

func createShortURL(t *testing.T, router *gin.Engine, cookie *http.Cookie, fullURL string) (createResponse, int) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"full_url":"`+fullURL+`"}`))
	r.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	router.ServeHTTP(w, r)

	var resp createResponse
	if w.Code == http.StatusOK || w.Code == http.StatusCreated {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w.Code
}

func TestShortenLifecycle(t *testing.T) {
	router := newTestServer(t)
	userA := newSession(t, router)
	userB := newSession(t, router)

	// создание новой ссылки
	created, code := createShortURL(t, router, userA, "https://example.com")
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, created.ShortURL.ShortCode)
	assert.False(t, created.AlreadyExists)
	assert.True(t, strings.HasPrefix(created.ShortURL.QRCode, "data:image/png;base64,"))
	assert.Equal(t, int64(0), created.ShortURL.Clicks)

	// повторное создание идемпотентно
	again, code := createShortURL(t, router, userA, "https://example.com")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, again.AlreadyExists)
	assert.Equal(t, created.ShortURL.ShortCode, again.ShortURL.ShortCode)

	// переход по короткой ссылке
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+created.ShortURL.ShortCode, nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Location"))

	// счётчик переходов виден в списке
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shorten", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var records []service.ShortURLRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].Clicks)

	// чужой пользователь не может удалить запись
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/shorten/"+created.ShortURL.ID, nil)
	r.AddCookie(userB)
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// владелец удаляет запись
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodDelete, "/shorten/"+created.ShortURL.ID, nil)
	r.AddCookie(userA)
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	// код больше не разрешается
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+created.ShortURL.ShortCode, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShortenRequiresAuth(t *testing.T) {
	router := newTestServer(t)

	_, code := createShortURL(t, router, nil, "https://example.com")
	assert.Equal(t, http.StatusUnauthorized, code)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/shorten/some-id", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestShortenRejectsInvalidURL(t *testing.T) {
	router := newTestServer(t)
	cookie := newSession(t, router)

	for _, input := range []string{"", "not-a-url", "example.com"} {
		_, code := createShortURL(t, router, cookie, input)
		assert.Equal(t, http.StatusBadRequest, code, "input %q", input)
	}

	// ничего не должно быть вставлено
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shorten", nil))
	var records []service.ShortURLRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Empty(t, records)
}

func TestSameURLDifferentOwners(t *testing.T) {
	router := newTestServer(t)
	userA := newSession(t, router)
	userB := newSession(t, router)

	first, code := createShortURL(t, router, userA, "https://example.com")
	require.Equal(t, http.StatusCreated, code)

	second, code := createShortURL(t, router, userB, "https://example.com")
	require.Equal(t, http.StatusCreated, code)

	assert.NotEqual(t, first.ShortURL.ShortCode, second.ShortURL.ShortCode)
}
