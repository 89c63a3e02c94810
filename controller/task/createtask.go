package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

func CreateTask(c *gin.Context, store *services.Store) {
	var req dto.TaskItemForCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, err := store.CreateTask(c.Request.Context(), controller.ChecklistID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	controller.Created(c, task.ID, dto.ToTaskItemDto(*task))
}
