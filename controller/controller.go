package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"smarttasks/middleware"
	"smarttasks/services"
)

// RespondError writes the response for an error returned by the services
// package. Unexpected errors are attached to the context for the request
// logger and answered with a generic 500.
func RespondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var patchErr *services.PatchError
	var accountErr *services.AccountError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": validationErr.Violations,
		})
	case errors.As(err, &patchErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": patchErr.Error()})
	case errors.As(err, &accountErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Account could not be created",
			"errors": accountErr.Issues,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, services.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page size and page number must be greater than 0"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}

// UserID returns the subject stored by the access token middleware.
func UserID(c *gin.Context) string {
	return c.MustGet(middleware.UserIDKey).(string)
}

// ChecklistID returns the id checked by the checklist owner middleware.
func ChecklistID(c *gin.Context) int {
	return c.MustGet(middleware.ChecklistIDKey).(int)
}

// ParamID parses an integer path parameter and answers 400 when it is not
// one.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return id, true
}

// Created answers 201 with a Location header pointing at the new resource
// below the request path.
func Created(c *gin.Context, id int, body any) {
	c.Header("Location", fmt.Sprintf("%s/%d", strings.TrimSuffix(c.Request.URL.Path, "/"), id))
	c.JSON(http.StatusCreated, body)
}
