package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

var notFoundErrors = []error{
	services.ErrUserNotFound,
	services.ErrNoSuchRequest,
	services.ErrPackageNotFound,
	services.ErrPaymentNotFound,
	services.ErrPostNotFound,
	services.ErrRoomNotFound,
	services.ErrInviteNotFound,
	services.ErrWalletNotFound,
}

var conflictErrors = []error{
	services.ErrUsernameTaken,
	services.ErrEmailTaken,
	services.ErrAlreadyFollowing,
	services.ErrDuplicateRequest,
	services.ErrAlreadyLiked,
	services.ErrAlreadyMember,
	services.ErrDuplicateInvite,
	services.ErrPaymentFinalized,
	services.ErrInviteFinalized,
}

var badRequestErrors = []error{
	services.ErrSelfFollow,
	services.ErrSelfBlock,
	services.ErrSelfTransfer,
	services.ErrSelfMessage,
	services.ErrInvalidAmount,
	services.ErrInvalidVisibility,
	services.ErrInvalidOTP,
	services.ErrInvalidCredentials,
	services.ErrInvalidSlot,
	services.ErrInsufficientCoins,
	services.ErrNotFriends,
	services.ErrNotFollower,
	services.ErrNotFollowing,
	services.ErrAccountDeactivated,
	services.ErrInvalidSignature,
	services.ErrWheelNotConfigured,
	services.ErrPriceNotConfigured,
}

var forbiddenErrors = []error{
	services.ErrBlocked,
	services.ErrChatNotAllowed,
	services.ErrNotVisible,
	services.ErrNotRoomMember,
	services.ErrNotAdmin,
}

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged server-side and answered with a generic 500 so internals never
// leak to clients.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"error": sentinel.Error()})
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusConflict, gin.H{"error": sentinel.Error()})
			return
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": sentinel.Error()})
			return
		}
	}
	for _, sentinel := range forbiddenErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusForbidden, gin.H{"error": sentinel.Error()})
			return
		}
	}

	log.Printf("Unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
