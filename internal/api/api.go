package api

import (
	"net/http"

	callsHandler "call-insights-server/internal/calls/handler"
	"call-insights-server/internal/notifier"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	callsHandler    callsHandler.Handler
	notifierHandler notifier.Handler
}

func New(router *gin.RouterGroup, callsHandler callsHandler.Handler, notifierHandler notifier.Handler) API {
	return API{
		router:          router,
		callsHandler:    callsHandler,
		notifierHandler: notifierHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	a.router.POST("/webhook/five9", a.callsHandler.HandleCallCompletedWebhook)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/client-summary/:contactId", a.callsHandler.HandleGetContactSummary)
		apiGroup.GET("/client-history/:contactId", a.callsHandler.HandleGetContactHistory)
	}

	a.router.GET("/ws/dashboard", a.notifierHandler.HandleDashboardSocket)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
