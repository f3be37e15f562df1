package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

type AdminHandler struct {
	db              *gorm.DB
	adminService    *services.AdminService
	walletService   *services.WalletService
	spinService     *services.SpinService
	paymentService  *services.PaymentService
	downloadService *services.DownloadService
}

func NewAdminHandler(db *gorm.DB, adminService *services.AdminService, walletService *services.WalletService, spinService *services.SpinService, paymentService *services.PaymentService, downloadService *services.DownloadService) *AdminHandler {
	return &AdminHandler{
		db:              db,
		adminService:    adminService,
		walletService:   walletService,
		spinService:     spinService,
		paymentService:  paymentService,
		downloadService: downloadService,
	}
}

// AdminMiddleware checks if user is admin
func (h *AdminHandler) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		admin, err := h.adminService.GetAdminByUserID(userID.(uint))
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not an admin"})
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin_role", admin.Role)
		c.Next()
	}
}

// SuperAdminMiddleware checks if user is super admin
func (h *AdminHandler) SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("admin_role")
		if !exists || role != "SUPER_ADMIN" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Super admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetDashboard returns platform totals and recent admin activity
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	var totalUsers int64
	var totalPosts int64
	var totalFollows int64
	var totalCoins int64

	h.db.Model(&models.User{}).Where("deactivated = ?", false).Count(&totalUsers)
	h.db.Model(&models.Post{}).Count(&totalPosts)
	h.db.Model(&models.Follow{}).Where("state = ?", models.FollowStateAccepted).Count(&totalFollows)
	h.db.Model(&models.Wallet{}).Select("COALESCE(SUM(coins), 0)").Row().Scan(&totalCoins)

	recentLogs, _ := h.adminService.RecentLogs(10)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_users":   totalUsers,
			"total_posts":   totalPosts,
			"total_follows": totalFollows,
			"total_coins":   totalCoins,
			"recent_logs":   recentLogs,
		},
	})
}

// UpsertSlot configures one of the eight wheel slots
func (h *AdminHandler) UpsertSlot(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		Position  int    `json:"position" binding:"required,min=1,max=8"`
		Label     string `json:"label" binding:"required,max=50"`
		Coins     int64  `json:"coins" binding:"min=0"`
		SpinAgain bool   `json:"spin_again"`
		IsActive  *bool  `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slot, err := h.spinService.UpsertSlot(req.Position, req.Label, req.Coins, req.SpinAgain, isActive)
	if err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "upsert_wheel_slot", nil,
		fmt.Sprintf("position=%d coins=%d", req.Position, req.Coins))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slot,
	})
}

// GetWheelConfig returns every slot including inactive ones
func (h *AdminHandler) GetWheelConfig(c *gin.Context) {
	var slots []models.SpinSlot
	if err := h.db.Order("position ASC").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wheel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slots,
	})
}

// CreatePackage adds a purchasable coin package
func (h *AdminHandler) CreatePackage(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		Name     string `json:"name" binding:"required,max=100"`
		Coins    int64  `json:"coins" binding:"required,min=1"`
		Price    string `json:"price" binding:"required"`
		Currency string `json:"currency"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	pkg, err := h.paymentService.CreatePackage(req.Name, req.Coins, price, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "create_package", nil,
		fmt.Sprintf("name=%s coins=%d", req.Name, req.Coins))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    pkg,
	})
}

// UpdatePackage edits an existing coin package
func (h *AdminHandler) UpdatePackage(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	packageID, err := strconv.ParseUint(c.Param("packageID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package id"})
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required,max=100"`
		Coins    int64  `json:"coins" binding:"required,min=1"`
		Price    string `json:"price" binding:"required"`
		IsActive bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	pkg, err := h.paymentService.UpdatePackage(uint(packageID), req.Name, req.Coins, price, req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "update_package", nil,
		fmt.Sprintf("id=%d active=%t", packageID, req.IsActive))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pkg,
	})
}

// ListAllPackages returns every package including inactive ones
func (h *AdminHandler) ListAllPackages(c *gin.Context) {
	packages, err := h.paymentService.ListPackages(true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    packages,
	})
}

// SetDownloadPrice sets the coin price for downloading one media type
func (h *AdminHandler) SetDownloadPrice(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		MediaType string `json:"media_type" binding:"required"`
		Coins     int64  `json:"coins" binding:"min=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := h.downloadService.SetPrice(models.MediaType(req.MediaType), req.Coins)
	if err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "set_download_price", nil,
		fmt.Sprintf("media_type=%s coins=%d", req.MediaType, req.Coins))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    price,
	})
}

// ListDownloadPrices returns the configured per-type download prices
func (h *AdminHandler) ListDownloadPrices(c *gin.Context) {
	prices, err := h.downloadService.ListPrices()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    prices,
	})
}

// AdjustWallet applies a signed coin correction to a user's wallet
func (h *AdminHandler) AdjustWallet(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Delta  int64  `json:"delta" binding:"required"`
		Note   string `json:"note" binding:"required,max=255"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.walletService.AdminAdjust(req.UserID, req.Delta, req.Note); err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "adjust_wallet", &req.UserID,
		fmt.Sprintf("delta=%d note=%s", req.Delta, req.Note))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wallet adjusted",
	})
}

// ReconcileWallet checks a wallet's balance against its ledger
func (h *AdminHandler) ReconcileWallet(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	balance, ledgerSum, ok, err := h.walletService.Reconcile(uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"balance":    balance,
		"ledger_sum": ledgerSum,
		"consistent": ok,
	})
}

// PromoteAdmin grants admin rights to a user
func (h *AdminHandler) PromoteAdmin(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"required,oneof=SUPER_ADMIN MODERATOR"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.adminService.PromoteToAdmin(req.UserID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	h.adminService.LogAction(adminID, "promote_admin", &req.UserID, "role="+req.Role)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    admin,
	})
}

// GetLogs returns recent admin actions
func (h *AdminHandler) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := h.adminService.RecentLogs(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
		"count":   len(logs),
	})
}
