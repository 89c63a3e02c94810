package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarttasks/services"
)

// ChecklistOwnerMiddleware guards every route under /checklists/:checklistid.
// Checklists owned by another user are reported as not found.
func ChecklistOwnerMiddleware(store *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		checklistID, err := strconv.Atoi(c.Param("checklistid"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid checklist ID"})
			return
		}

		userID := c.GetString(UserIDKey)
		if err := store.RequireOwnedChecklist(c.Request.Context(), checklistID, userID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify checklist ownership"})
			return
		}

		c.Set(ChecklistIDKey, checklistID)
		c.Next()
	}
}
