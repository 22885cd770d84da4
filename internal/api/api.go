package api

import (
	"net/http"

	consultationHandler "clientbridge-server/internal/consultation/handler"
	voicechatHandler "clientbridge-server/internal/voicechat/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	consultationHandler consultationHandler.Handler
	voicechatHandler    voicechatHandler.Handler
}

func New(router *gin.RouterGroup, consultationHandler consultationHandler.Handler,
	voicechatHandler voicechatHandler.Handler) API {
	return API{
		router:              router,
		consultationHandler: consultationHandler,
		voicechatHandler:    voicechatHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/submit", a.consultationHandler.HandleSubmit)
		apiGroup.POST("/transcribe", a.voicechatHandler.HandleTranscribe)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
