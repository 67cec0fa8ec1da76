// Package authhandlers содержит HTTP-хендлеры выпуска сессионных токенов.
package authhandlers

import (
	"net/http"

	"github.com/ekuzmina/link-shortener/internal/app/auth"
	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHandler выпускает сессионные токены для новых пользователей.
type SessionHandler struct {
	cfg    *config.ConfigType
	logger *zap.SugaredLogger
}

func NewSessionHandler(cfg *config.ConfigType, logger *zap.SugaredLogger) *SessionHandler {
	return &SessionHandler{cfg: cfg, logger: logger}
}

// CreateSession обрабатывает POST /api/auth/session: генерирует новый
// идентификатор пользователя, подписывает для него JWT и устанавливает
// его в cookie.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	userID := uuid.New().String()

	token, err := auth.NewToken(userID, h.cfg.SecretKey)
	if err != nil {
		h.logger.Errorw("Failed to sign session token", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error creating session"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExp.Seconds()),
		HttpOnly: true,
	})

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}
