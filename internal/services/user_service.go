package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// UserService handles user-related business logic
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SearchUsers finds active users whose username or full name contains the
// query.
func (s *UserService) SearchUsers(query string, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var users []models.User
	err := s.db.
		Where("deactivated = ?", false).
		Where("LOWER(username) LIKE ? OR LOWER(full_name) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// UpdateProfile updates the mutable profile fields.
func (s *UserService) UpdateProfile(userID uint, fullName, bio string, avatarURL *string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Bio = bio
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetVisibility switches a profile between public and private.
func (s *UserService) SetVisibility(userID uint, visibility models.ProfileVisibility) error {
	if visibility != models.VisibilityPublic && visibility != models.VisibilityPrivate {
		return ErrInvalidVisibility
	}
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("visibility", visibility)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeactivateAccount soft-clears an account: the row stays for referential
// integrity, the profile content goes.
func (s *UserService) DeactivateAccount(userID uint) error {
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"deactivated": true,
			"full_name":   "",
			"bio":         "",
			"avatar_url":  nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
