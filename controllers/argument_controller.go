package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type submitArgumentRequest struct {
	Argument struct {
		Content        string `json:"content" binding:"required"`
		AuthorUsername string `json:"authorUsername" binding:"required"`
	} `json:"argument" binding:"required"`
}

// SubmitPrivateArgument posts an argument to a private debate, enforcing
// turn order
func SubmitPrivateArgument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "invalid debate id"})
		return
	}

	var req submitArgumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "argument content and authorUsername are required"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	argument, err := argumentService.SubmitPrivateArgument(dbCtx, id, req.Argument.Content, req.Argument.AuthorUsername)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Error creating argument"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"argument": argument}})
}

// SubmitPublicArgument posts an argument to a public debate, no turn order
func SubmitPublicArgument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "invalid debate id"})
		return
	}

	var req submitArgumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "argument content and authorUsername are required"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	argument, err := argumentService.SubmitPublicArgument(dbCtx, id, req.Argument.Content, req.Argument.AuthorUsername)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Error creating argument"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"argument": argument}})
}
