package checklist

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

func GetChecklists(c *gin.Context, store *services.Store) {
	var query dto.ListChecklistsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	pageSize := services.ClampPageSize(query.PageSize)
	if err := services.CheckPage(query.PageNumber, pageSize); err != nil {
		controller.RespondError(c, err)
		return
	}

	checklists, meta, err := store.ListChecklistsForUser(c.Request.Context(), controller.UserID(c), query.SearchQuery, query.PageNumber, pageSize)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	header, err := json.Marshal(meta)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Header("X-Pagination", string(header))
	c.JSON(http.StatusOK, dto.ToChecklistDtos(checklists))
}

func GetChecklist(c *gin.Context, store *services.Store) {
	checklist, err := store.GetChecklist(c.Request.Context(), controller.ChecklistID(c), true)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChecklistWithTasksDto(*checklist))
}
