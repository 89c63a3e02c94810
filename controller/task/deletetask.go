package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/services"
)

func DeleteTask(c *gin.Context, store *services.Store) {
	taskID, ok := controller.ParamID(c, "taskid")
	if !ok {
		return
	}

	if err := store.DeleteTask(c.Request.Context(), controller.ChecklistID(c), taskID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
