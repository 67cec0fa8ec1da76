package http

import (
	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/handlers/http/authhandlers"
	"github.com/ekuzmina/link-shortener/internal/app/handlers/http/dbhandlers"
	"github.com/ekuzmina/link-shortener/internal/app/handlers/http/shortenurlhandlers"
	"github.com/ekuzmina/link-shortener/internal/app/middleware"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	cfg          *config.ConfigType
	urlSvc       service.URLShortener
	urlGetSvc    service.URLGetter
	urlDeleteSvc service.URLDeleter
	pinger       dbhandlers.Pinger
	logger       *zap.SugaredLogger
}

func New(
	cfg *config.ConfigType,
	urlSvc service.URLShortener,
	urlGetSvc service.URLGetter,
	urlDeleteSvc service.URLDeleter,
	pinger dbhandlers.Pinger,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		cfg:          cfg,
		urlSvc:       urlSvc,
		urlGetSvc:    urlGetSvc,
		urlDeleteSvc: urlDeleteSvc,
		pinger:       pinger,
		logger:       logger,
	}
}

func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	getHandler := shortenurlhandlers.NewGetURLHandler(h.cfg, h.urlGetSvc, h.logger)
	shortenHandler := shortenurlhandlers.NewShortenHandler(h.cfg, h.urlSvc, h.logger)
	deleteHandler := shortenurlhandlers.NewDeleteURLHandler(h.cfg, h.urlDeleteSvc, h.logger)

	r.GET("/shorten", getHandler.ListURLs)
	r.POST("/shorten", middleware.RequireAuth(), shortenHandler.CreateShortURL)
	r.DELETE("/shorten/:id", middleware.RequireAuth(), deleteHandler.DeleteURL)
	r.GET("/ping", dbhandlers.NewPingHandler(h.pinger).Ping)
	r.POST("/api/auth/session", authhandlers.NewSessionHandler(h.cfg, h.logger).CreateSession)
	r.GET("/:code", getHandler.GetURL)
}
