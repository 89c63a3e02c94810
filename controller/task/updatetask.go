package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

// UpdateTask replaces the task; fields missing from the body are reset.
func UpdateTask(c *gin.Context, store *services.Store) {
	taskID, ok := controller.ParamID(c, "taskid")
	if !ok {
		return
	}

	var req dto.TaskItemForUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := store.UpdateTask(c.Request.Context(), controller.ChecklistID(c), taskID, req); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func PatchTask(c *gin.Context, store *services.Store) {
	taskID, ok := controller.ParamID(c, "taskid")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	ops, err := services.ParsePatchDocument(body)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	if err := store.PatchTask(c.Request.Context(), controller.ChecklistID(c), taskID, ops); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
