package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

type SpinHandler struct {
	spinService *services.SpinService
}

func NewSpinHandler(spinService *services.SpinService) *SpinHandler {
	return &SpinHandler{spinService: spinService}
}

// GetWheel returns the wheel's active slots
func (h *SpinHandler) GetWheel(c *gin.Context) {
	slots, err := h.spinService.GetWheel()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slots,
	})
}

// Spin consumes one daily spin on the chosen slot
func (h *SpinHandler) Spin(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Position int `json:"position" binding:"required,min=1,max=8"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.spinService.Spin(userID, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.LimitReached {
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"limit_reached": true,
			"spins_used":    result.SpinsUsed,
			"spins_left":    0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"reward":     result.Reward,
		"coins":      result.Coins,
		"spin_again": result.SpinAgain,
		"spins_used": result.SpinsUsed,
		"spins_left": result.SpinsLeft,
		"balance":    result.Balance,
	})
}

// SpinsToday reports how many spins the caller has used and has left
func (h *SpinHandler) SpinsToday(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	used, left, err := h.spinService.SpinsToday(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"spins_used": used,
		"spins_left": left,
	})
}
