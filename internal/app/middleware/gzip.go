// Package middleware содержит Gin-middleware сервиса:
// логирование запросов, gzip и аутентификацию по сессионной cookie.
package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipWriter оборачивает gin.ResponseWriter и gzip.Writer,
// чтобы записи в ResponseWriter автоматически сжимались.
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

// GzipMiddleware распаковывает входящие тела с Content-Encoding: gzip
// и сжимает ответы для клиентов с Accept-Encoding: gzip.
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gzWriter := gzip.NewWriter(c.Writer)
		defer gzWriter.Close()

		c.Writer = &gzipWriter{ResponseWriter: c.Writer, writer: gzWriter}
		c.Header("Content-Encoding", "gzip")

		c.Next()
	}
}
