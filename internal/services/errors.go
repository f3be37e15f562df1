package services

import (
	"errors"
)

// Expected business outcomes, mapped to 4xx at the handler boundary.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidVisibility  = errors.New("visibility must be public or private")
	ErrInvalidOTP         = errors.New("invalid or expired code")

	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrSelfBlock        = errors.New("cannot block yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrDuplicateRequest = errors.New("follow request already pending")
	ErrNoSuchRequest    = errors.New("no such follow request")
	ErrBlocked          = errors.New("blocked relationship exists")
	ErrNotFollower      = errors.New("user is not a follower")
	ErrNotFollowing     = errors.New("user is not being followed")

	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrSelfTransfer     = errors.New("cannot transfer coins to yourself")
	ErrNotFriends       = errors.New("recipient is not a friend")
	ErrInsufficientCoins = errors.New("insufficient coin balance")
	ErrWalletNotFound   = errors.New("wallet not found")

	ErrWheelNotConfigured = errors.New("spin wheel is not configured")
	ErrInvalidSlot        = errors.New("invalid or inactive spin slot")

	ErrPackageNotFound  = errors.New("coin package not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrPaymentFinalized = errors.New("payment already finalized")

	ErrPostNotFound       = errors.New("post not found")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrPriceNotConfigured = errors.New("no download price configured for this media type")

	ErrChatNotAllowed = errors.New("users must follow each other to chat")
	ErrSelfMessage    = errors.New("cannot message yourself")
	ErrNotVisible     = errors.New("profile is private")

	ErrRoomNotFound    = errors.New("room not found")
	ErrNotRoomMember   = errors.New("not a member of this room")
	ErrAlreadyMember   = errors.New("user is already a member of this room")
	ErrDuplicateInvite = errors.New("an invite for this user is already pending")
	ErrInviteNotFound  = errors.New("invite not found")
	ErrInviteFinalized = errors.New("invite already answered")

	ErrNotAdmin = errors.New("admin access required")
)

// Integrity failures are surfaced distinctly and logged loudly.
var (
	ErrInvalidSignature = errors.New("payment signature verification failed")
)
