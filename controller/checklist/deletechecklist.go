package checklist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/services"
)

func DeleteChecklist(c *gin.Context, store *services.Store) {
	if err := store.DeleteChecklist(c.Request.Context(), controller.ChecklistID(c)); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
