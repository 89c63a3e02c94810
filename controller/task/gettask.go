package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

func GetTasks(c *gin.Context, store *services.Store) {
	tasks, err := store.ListTasks(c.Request.Context(), controller.ChecklistID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskItemDtos(tasks))
}

func GetTask(c *gin.Context, store *services.Store) {
	taskID, ok := controller.ParamID(c, "taskid")
	if !ok {
		return
	}

	task, err := store.GetTask(c.Request.Context(), controller.ChecklistID(c), taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskItemDto(*task))
}
