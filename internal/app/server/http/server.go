// Package http настраивает маршруты, middleware и запускает HTTP-сервер.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	handlers "github.com/ekuzmina/link-shortener/internal/app/handlers/http"
	"github.com/ekuzmina/link-shortener/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	srv    *http.Server
	logger *zap.SugaredLogger
}

func NewServer(addr string, secretKey string, logger *zap.SugaredLogger, h handlers.Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	logger.Debug("Setting up middleware")
	r.Use(middleware.MiddlewareLogger(logger), middleware.GzipMiddleware(), middleware.AuthMiddleware(secretKey, logger))
	h.RegisterRoutes(r)

	return &Server{
		srv:    &http.Server{Addr: addr, Handler: r},
		logger: logger,
	}
}

// Run запускает сервер на адресе addr и корректно останавливает его
// при отмене контекста.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infow("Initializing server", "address", s.srv.Addr)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Infow("Shutting down server", "signal", "signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("Error shutting down server", "error", err)
		}
	}()

	err := s.srv.ListenAndServe()
	wg.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
