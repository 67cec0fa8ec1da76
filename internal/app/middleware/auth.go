package middleware

import (
	"net/http"

	"github.com/ekuzmina/link-shortener/internal/app/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey — ключ, под которым userID хранится в контексте запроса.
const UserIDKey = "userID"

// AuthMiddleware проверяет сессионный JWT в cookie. При валидном токене
// кладёт userID в контекст запроса; при отсутствии или невалидном токене
// запрос продолжается анонимно. Токены здесь никогда не выпускаются.
func AuthMiddleware(secretKey string, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.CookieName)
		if err != nil {
			logger.Debug("Session cookie not found, proceeding anonymously")
			return
		}

		claims, err := auth.ParseToken(cookie, secretKey)
		if err != nil {
			logger.Debugw("Invalid session token, proceeding anonymously", "error", err)
			return
		}

		c.Set(UserIDKey, claims.UserID)
	}
}

// RequireAuth прерывает запрос со статусом 401, если AuthMiddleware
// не установил userID в контексте.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(UserIDKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		if str, ok := userID.(string); !ok || str == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
	}
}

// CurrentUserID возвращает идентификатор пользователя из контекста
// запроса, либо пустую строку для анонимного вызова.
func CurrentUserID(c *gin.Context) string {
	if uid, exists := c.Get(UserIDKey); exists {
		if str, ok := uid.(string); ok {
			return str
		}
	}
	return ""
}
