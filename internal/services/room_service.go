package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
	"github.com/ganapathi9191/Social-media-sub000/internal/utils"
)

// RoomService manages group rooms, membership and invites.
type RoomService struct {
	db      *gorm.DB
	emitter notify.Emitter
}

// NewRoomService creates a new RoomService
func NewRoomService(db *gorm.DB, emitter notify.Emitter) *RoomService {
	return &RoomService{db: db, emitter: emitter}
}

// CreateRoom creates a room with the creator as its first member.
func (s *RoomService) CreateRoom(creatorID uint, name string) (*models.Room, error) {
	code, err := utils.GenerateRoomCode()
	if err != nil {
		return nil, err
	}

	room := models.Room{
		Code:      code,
		Name:      name,
		CreatedBy: creatorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}
		member := models.RoomMember{RoomID: room.ID, UserID: creatorID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// InviteMember invites a user to a room. At most one pending invite may
// exist per (room, user) pair; the check and the insert share a
// transaction so concurrent invites cannot slip through.
func (s *RoomService) InviteMember(roomID, inviterID, inviteeID uint) (*models.GroupInvite, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if err := s.requireMember(roomID, inviterID); err != nil {
		return nil, err
	}

	var invite models.GroupInvite
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RoomMember{}).
			Where("room_id = ? AND user_id = ?", roomID, inviteeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyMember
		}

		if err := tx.Model(&models.GroupInvite{}).
			Where("room_id = ? AND invited_user = ? AND status = ?",
				roomID, inviteeID, models.InviteStatusPending).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateInvite
		}

		invite = models.GroupInvite{
			RoomID:      roomID,
			InvitedBy:   inviterID,
			InvitedUser: inviteeID,
			Status:      models.InviteStatusPending,
		}
		return tx.Create(&invite).Error
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(notify.Event{
		RecipientID: inviteeID,
		SenderID:    inviterID,
		Type:        models.NotifyGroupInvite,
		Message:     fmt.Sprintf("invited you to %s", room.Name),
	})

	return &invite, nil
}

// RespondToInvite accepts or rejects a pending invite. Accepting adds the
// membership in the same transaction; both answers are terminal.
func (s *RoomService) RespondToInvite(inviteID, userID uint, accept bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var invite models.GroupInvite
		if err := tx.First(&invite, inviteID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInviteNotFound
			}
			return err
		}

		if invite.InvitedUser != userID {
			return ErrInviteNotFound
		}
		if invite.Status != models.InviteStatusPending {
			return ErrInviteFinalized
		}

		if accept {
			invite.Status = models.InviteStatusAccepted
		} else {
			invite.Status = models.InviteStatusRejected
		}
		if err := tx.Save(&invite).Error; err != nil {
			return err
		}

		if accept {
			member := models.RoomMember{RoomID: invite.RoomID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to add room member: %w", err)
			}
		}
		return nil
	})
}

// PendingInvites lists a user's pending invites.
func (s *RoomService) PendingInvites(userID uint) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := s.db.Preload("Room").Preload("Inviter").
		Where("invited_user = ? AND status = ?", userID, models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

// UserRooms lists the rooms a user belongs to.
func (s *RoomService) UserRooms(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Model(&models.Room{}).
		Joins("JOIN room_members ON room_members.room_id = rooms.id").
		Where("room_members.user_id = ?", userID).
		Find(&rooms).Error
	return rooms, err
}

// RoomMembers lists the members of a room. Callers must be members.
func (s *RoomService) RoomMembers(roomID, userID uint) ([]models.User, error) {
	if err := s.requireMember(roomID, userID); err != nil {
		return nil, err
	}

	var users []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN room_members ON room_members.user_id = users.id").
		Where("room_members.room_id = ?", roomID).
		Find(&users).Error
	return users, err
}

func (s *RoomService) requireMember(roomID, userID uint) error {
	var count int64
	if err := s.db.Model(&models.RoomMember{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotRoomMember
	}
	return nil
}
