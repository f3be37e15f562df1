package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

type GraphHandler struct {
	graphService *services.GraphService
}

func NewGraphHandler(graphService *services.GraphService) *GraphHandler {
	return &GraphHandler{graphService: graphService}
}

// requireTarget parses the :id route parameter.
func requireTarget(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// Follow sends a follow request to the target user
func (h *GraphHandler) Follow(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	targetID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.SendFollowRequest(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Follow request sent",
	})
}

// Approve accepts a pending follow request from the target user
func (h *GraphHandler) Approve(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	requesterID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.ApproveFollowRequest(c.Request.Context(), userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Follow request approved",
	})
}

// Reject declines a pending follow request from the target user
func (h *GraphHandler) Reject(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	requesterID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.RejectFollowRequest(c.Request.Context(), userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Follow request rejected",
	})
}

// Unfollow stops following the target user
func (h *GraphHandler) Unfollow(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	targetID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.RemoveFollowing(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Unfollowed",
	})
}

// RemoveFollower removes the target user from the caller's followers
func (h *GraphHandler) RemoveFollower(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	followerID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.RemoveFollower(c.Request.Context(), userID, followerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Follower removed",
	})
}

// Block severs all follow edges with the target and prevents new ones
func (h *GraphHandler) Block(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	targetID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.BlockUser(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User blocked",
	})
}

// Unblock lifts a block. Severed follows are not restored.
func (h *GraphHandler) Unblock(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	targetID, ok := requireTarget(c)
	if !ok {
		return
	}

	if err := h.graphService.UnblockUser(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User unblocked",
	})
}

// Followers lists the caller's followers
func (h *GraphHandler) Followers(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	users, err := h.graphService.Followers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// Following lists who the caller follows
func (h *GraphHandler) Following(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	users, err := h.graphService.Following(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// Requests lists pending incoming follow requests
func (h *GraphHandler) Requests(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	users, err := h.graphService.PendingRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// Blocked lists the users the caller has blocked
func (h *GraphHandler) Blocked(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	users, err := h.graphService.BlockedUsers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// Status reports the caller's relation to the target user
func (h *GraphHandler) Status(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	targetID, ok := requireTarget(c)
	if !ok {
		return
	}

	status, err := h.graphService.FollowStatus(c.Request.Context(), userID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  status,
	})
}
