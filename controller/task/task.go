package task

import (
	"smarttasks/middleware"
	"smarttasks/services"

	"github.com/gin-gonic/gin"
)

func TaskController(router *gin.RouterGroup, store *services.Store, tokens *services.TokenService) {
	routes := router.Group("/checklists/:checklistid/tasks",
		middleware.AccessTokenMiddleware(tokens),
		middleware.ChecklistOwnerMiddleware(store),
	)
	{
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, store)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, store)
		})
		routes.GET("/:taskid", func(c *gin.Context) {
			GetTask(c, store)
		})
		routes.PUT("/:taskid", func(c *gin.Context) {
			UpdateTask(c, store)
		})
		routes.PATCH("/:taskid", func(c *gin.Context) {
			PatchTask(c, store)
		})
		routes.DELETE("/:taskid", func(c *gin.Context) {
			DeleteTask(c, store)
		})
	}
}
