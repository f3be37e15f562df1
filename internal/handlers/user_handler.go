package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

type UserHandler struct {
	userService  *services.UserService
	graphService *services.GraphService
}

func NewUserHandler(userService *services.UserService, graphService *services.GraphService) *UserHandler {
	return &UserHandler{userService: userService, graphService: graphService}
}

// Me returns the authenticated user's own profile
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	followers, following, err := h.graphService.FollowCounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      user,
		"followers": followers,
		"following": following,
	})
}

// GetProfile returns another user's profile, trimmed to what the viewer
// may see.
func (h *UserHandler) GetProfile(c *gin.Context) {
	viewerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	status, err := h.graphService.FollowStatus(ctx, viewerID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	visible, err := h.graphService.ResolveVisibility(ctx, viewerID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !visible {
		// Private profile: expose only the public envelope.
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"id":                 user.ID,
				"username":           user.Username,
				"profile_visibility": user.Visibility,
			},
			"relation": status,
		})
		return
	}

	followers, following, err := h.graphService.FollowCounts(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      user,
		"relation":  status,
		"followers": followers,
		"following": following,
	})
}

// Search finds users by username prefix or fragment
func (h *UserHandler) Search(c *gin.Context) {
	if _, exists := auth.GetUserID(c); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	users, err := h.userService.SearchUsers(query, limit)
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

// UpdateProfile updates the caller's display fields
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		FullName  string  `json:"full_name"`
		Bio       string  `json:"bio" binding:"max=500"`
		AvatarURL *string `json:"avatar_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(userID, req.FullName, req.Bio, req.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// SetVisibility switches the profile between public and private
func (h *UserHandler) SetVisibility(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Visibility string `json:"visibility" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.SetVisibility(userID, models.ProfileVisibility(req.Visibility)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Visibility updated",
	})
}

// Deactivate soft-deletes the caller's account
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.DeactivateAccount(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account deactivated",
	})
}
