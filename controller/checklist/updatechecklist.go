package checklist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

// UpdateChecklist replaces the checklist; fields missing from the body
// fall back to their defaults.
func UpdateChecklist(c *gin.Context, store *services.Store) {
	req := dto.NewChecklistForUpdate()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := store.UpdateChecklist(c.Request.Context(), controller.ChecklistID(c), req); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func PatchChecklist(c *gin.Context, store *services.Store) {
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

	if err := store.PatchChecklist(c.Request.Context(), controller.ChecklistID(c), ops); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
