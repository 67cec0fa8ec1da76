// Package shortenurlhandlers содержит HTTP-хендлеры для операций с короткими ссылками.
package shortenurlhandlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/middleware"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShortenHandler обрабатывает создание коротких ссылок.
type ShortenHandler struct {
	cfg     *config.ConfigType
	Service service.URLShortener
	logger  *zap.SugaredLogger
}

// NewShortenHandler создаёт новый ShortenHandler,
// принимая конфиг, URLShortener и SugaredLogger.
func NewShortenHandler(cfg *config.ConfigType, service service.URLShortener, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{cfg: cfg, Service: service, logger: logger}
}

// baseURL возвращает базовый адрес для коротких ссылок: настроенный
// BaseAddress, либо схему и хост входящего запроса, если адрес не задан.
func (h *ShortenHandler) baseURL(c *gin.Context) string {
	if h.cfg.BaseAddress != "" {
		return h.cfg.BaseAddress
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// CreateShortURL обрабатывает POST /shorten.
// Принимает JSON {"full_url": "..."} и возвращает созданную запись:
// 201 для новой ссылки, 200 с already_exists, если пользователь
// уже сокращал этот URL.
func (h *ShortenHandler) CreateShortURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	userID := middleware.CurrentUserID(c)

	var req struct {
		FullURL string `json:"full_url"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	record, existed, err := h.Service.Create(c.Request.Context(), req.FullURL, userID, h.baseURL(c))
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	case errors.Is(err, service.ErrInvalidURL):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid URL"})
		return
	case err != nil:
		h.logger.Errorw("Failed to create short URL", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error creating short URL"})
		return
	}

	if existed {
		c.JSON(http.StatusOK, gin.H{"short_url": record, "already_exists": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"short_url": record})
}
