// Package shortenurlhandlers содержит HTTP-хендлеры для операций с короткими ссылками.
package shortenurlhandlers

import (
	"errors"
	"net/http"

	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetURLHandler обрабатывает перенаправление на оригинальный URL
// и выдачу списка сохранённых ссылок.
type GetURLHandler struct {
	cfg     *config.ConfigType
	service service.URLGetter
	logger  *zap.SugaredLogger
}

// NewGetURLHandler создаёт новый экземпляр GetURLHandler.
func NewGetURLHandler(cfg *config.ConfigType, service service.URLGetter, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{cfg: cfg, service: service, logger: logger}
}

// GetURL обрабатывает GET /:code: перенаправляет клиента на оригинальный
// URL и увеличивает счётчик переходов.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	code := c.Param("code")
	fullURL, err := h.service.Resolve(c.Request.Context(), code)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	case err != nil:
		h.logger.Errorw("Failed to resolve short URL", "code", code, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error redirecting to full URL"})
		return
	}

	c.Redirect(http.StatusFound, fullURL)
}

// ListURLs обрабатывает GET /shorten и возвращает все сохранённые записи.
func (h *GetURLHandler) ListURLs(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("Failed to list short URLs", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving short URLs"})
		return
	}

	if records == nil {
		records = []service.ShortURLRecord{}
	}
	c.JSON(http.StatusOK, records)
}
