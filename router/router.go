package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lzmu/lzmubackend/config"
	"github.com/lzmu/lzmubackend/controllers"
	"github.com/lzmu/lzmubackend/mailer"
	"github.com/lzmu/lzmubackend/middleware"
)

func New(cfg config.Config, resolver mailer.Resolver, log *zap.Logger) *gin.Engine {
	r := gin.New()

	allowedOrigins := cfg.Origins()
	log.Info("allowed origins", zap.Any("origins", allowedOrigins))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))

	r.GET("/ping", controllers.Ping())

	api := r.Group("/api")
	{
		api.GET("/options", controllers.GetQuoteOptions())
		api.POST("/send", controllers.SendQuoteRequest(resolver, controllers.QuoteSettings{
			From:             cfg.Quote.From,
			To:               cfg.Quote.To,
			StrictValidation: cfg.Quote.StrictValidation,
		}, log))
	}

	return r
}
