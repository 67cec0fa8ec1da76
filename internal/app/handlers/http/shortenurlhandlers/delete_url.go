package shortenurlhandlers

import (
	"errors"
	"net/http"

	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/middleware"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeleteURLHandler struct {
	cfg     *config.ConfigType
	Service service.URLDeleter
	logger  *zap.SugaredLogger
}

func NewDeleteURLHandler(cfg *config.ConfigType, service service.URLDeleter, logger *zap.SugaredLogger) *DeleteURLHandler {
	return &DeleteURLHandler{cfg: cfg, Service: service, logger: logger}
}

// DeleteURL обрабатывает DELETE /shorten/:id.
// Чужая и несуществующая записи неразличимы: обе дают 404.
func (h *DeleteURLHandler) DeleteURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	userID := middleware.CurrentUserID(c)
	id := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), id, userID)
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Short URL not found"})
		return
	case err != nil:
		h.logger.Errorw("Failed to delete short URL", "id", id, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Error deleting short URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Short URL deleted successfully"})
}
