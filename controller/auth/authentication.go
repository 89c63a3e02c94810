package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttasks/controller"
	"smarttasks/dto"
	"smarttasks/services"
)

func AuthController(router *gin.RouterGroup, accounts *services.AccountService) {
	routes := router.Group("/account")
	{
		routes.POST("/create", func(c *gin.Context) {
			Create(c, accounts)
		})
		routes.POST("/authenticate", func(c *gin.Context) {
			Authenticate(c, accounts)
		})
	}
}

func Create(c *gin.Context, accounts *services.AccountService) {
	var request dto.AuthenticationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if _, err := accounts.CreateAccount(c.Request.Context(), request.Username, request.Password); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
}

func Authenticate(c *gin.Context, accounts *services.AccountService) {
	var request dto.AuthenticationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	token, err := accounts.Authenticate(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
