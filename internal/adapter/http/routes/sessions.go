package routes

import (
	"restock_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathPing     = "/ping"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.RestockSessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.PATCH("/:id", sessionHandler.RenameSession)
		sessions.DELETE("/:id", sessionHandler.DeleteSession)

		sessions.POST("/:id/items", sessionHandler.AddItem)
		sessions.PATCH("/:id/items/:product_id", sessionHandler.UpdateItem)
		sessions.DELETE("/:id/items/:product_id", sessionHandler.RemoveItem)

		sessions.POST("/:id/emails", sessionHandler.GenerateEmails)
		sessions.POST("/:id/send", sessionHandler.SendEmails)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
