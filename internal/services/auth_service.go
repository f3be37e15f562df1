package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

const otpPurposePasswordReset = "password_reset"

// AuthService handles registration, login and password reset
type AuthService struct {
	db     *gorm.DB
	otpTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, otpTTL time.Duration) *AuthService {
	return &AuthService{db: db, otpTTL: otpTTL}
}

// Register creates a new user account.
func (s *AuthService) Register(username, email, password, fullName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Visibility:   models.VisibilityPublic,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("New user registered: %s (ID: %d)", username, user.ID)
	return &user, nil
}

// Login checks credentials and returns the user.
func (s *AuthService) Login(usernameOrEmail, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", usernameOrEmail, strings.ToLower(usernameOrEmail)).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Deactivated {
		return nil, ErrAccountDeactivated
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// RequestPasswordReset issues a one-time code for the account behind the
// email. The code goes out via the mail collaborator; the signed token
// carrying its hash goes back to the client, so no reset state lives in
// the process.
func (s *AuthService) RequestPasswordReset(email string) (code string, token string, err error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}

	code, token, err = auth.GenerateOTP(user.ID, otpPurposePasswordReset, s.otpTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate reset code: %w", err)
	}

	return code, token, nil
}

// ResetPassword verifies the code against its token and sets the new
// password.
func (s *AuthService) ResetPassword(token, code, newPassword string) error {
	userID, err := auth.VerifyOTP(token, code, otpPurposePasswordReset)
	if err != nil {
		return ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", string(hash))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	log.Printf("Password reset for user %d", userID)
	return nil
}
