package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// CreateUser registers a new username
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "username is required"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	user, err := userService.CreateUser(dbCtx, req.Username)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"user": user}})
}

// GetUser returns a user by username
func GetUser(c *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	user, err := userService.GetUser(dbCtx, c.Param("username"))
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": user}})
}
