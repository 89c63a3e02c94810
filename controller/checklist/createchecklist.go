package checklist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

func CreateChecklist(c *gin.Context, store *services.Store) {
	req := dto.NewChecklistForCreation()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	checklist, err := store.CreateChecklist(c.Request.Context(), controller.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	controller.Created(c, checklist.ID, dto.ToChecklistDto(*checklist))
}
