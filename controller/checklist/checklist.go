package checklist

import (
	"smarttasks/middleware"
	"smarttasks/services"

	"github.com/gin-gonic/gin"
)

func ChecklistController(router *gin.RouterGroup, store *services.Store, tokens *services.TokenService) {
	routes := router.Group("/checklists", middleware.AccessTokenMiddleware(tokens))
	{
		routes.GET("", func(c *gin.Context) {
			GetChecklists(c, store)
		})
		routes.POST("", func(c *gin.Context) {
			CreateChecklist(c, store)
		})
	}

	owned := routes.Group("/:checklistid", middleware.ChecklistOwnerMiddleware(store))
	{
		owned.GET("", func(c *gin.Context) {
			GetChecklist(c, store)
		})
		owned.PUT("", func(c *gin.Context) {
			UpdateChecklist(c, store)
		})
		owned.PATCH("", func(c *gin.Context) {
			PatchChecklist(c, store)
		})
		owned.DELETE("", func(c *gin.Context) {
			DeleteChecklist(c, store)
		})
	}
}
