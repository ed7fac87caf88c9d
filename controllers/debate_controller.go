package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type createPrivateDebateRequest struct {
	Title          string `json:"title"`
	Opponent       string `json:"opponent" binding:"required"`
	AuthorUsername string `json:"authorUsername" binding:"required"`
}

type createPublicDebateRequest struct {
	Title          string `json:"title" binding:"required"`
	AuthorUsername string `json:"authorUsername" binding:"required"`
}

// CreatePrivateDebate opens a two-party debate with the author on turn
func CreatePrivateDebate(c *gin.Context) {
	var req createPrivateDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "opponent and authorUsername are required"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	debate, err := debateService.CreatePrivateDebate(dbCtx, req.AuthorUsername, req.Opponent, req.Title)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Error creating debate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"debate": debate}})
}

// CreatePublicDebate opens an open debate with the author as sole participant
func CreatePublicDebate(c *gin.Context) {
	var req createPublicDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "title and authorUsername are required"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	debate, err := debateService.CreatePublicDebate(dbCtx, req.AuthorUsername, req.Title)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Error creating debate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"debate": debate}})
}

// GetDebate returns the debate graph with its arguments
func GetDebate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "invalid debate id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	debate, err := debateService.GetDebate(dbCtx, id)
	if err != nil {
		status, label := errorStatus(err)
		c.JSON(status, gin.H{"error": label, "message": "Debate not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"debate": debate}})
}
