package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// AdminService handles admin lookups and audit logging
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminService
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetAdminByUserID returns the admin record for a user, if any.
func (s *AdminService) GetAdminByUserID(userID uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.Where("user_id = ?", userID).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotAdmin
		}
		return nil, err
	}
	return &admin, nil
}

// IsAdmin reports whether the user has admin access.
func (s *AdminService) IsAdmin(userID uint) bool {
	_, err := s.GetAdminByUserID(userID)
	return err == nil
}

// PromoteToAdmin grants admin access to a user.
func (s *AdminService) PromoteToAdmin(userID uint, role string) (*models.AdminUser, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.AdminUser
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		existing.Role = role
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	admin := models.AdminUser{UserID: userID, Role: role}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}

// LogAction records an admin action for auditing.
func (s *AdminService) LogAction(adminID uint, action string, targetID *uint, details string) {
	entry := models.AdminLog{
		AdminID:  adminID,
		Action:   action,
		TargetID: targetID,
		Details:  details,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		// Audit logging must not fail the admin operation.
		return
	}
}

// RecentLogs returns the latest admin audit entries.
func (s *AdminService) RecentLogs(limit int) ([]models.AdminLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.AdminLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
