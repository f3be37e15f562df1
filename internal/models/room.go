package models

import (
	"time"
)

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// Room is a group chat room.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;size:20;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	Creator   *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomMember records membership of a user in a room.
type RoomMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RoomID   uint      `gorm:"not null;uniqueIndex:idx_room_member;index" json:"room_id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_room_member" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (RoomMember) TableName() string {
	return "room_members"
}

// GroupInvite asks a user to join a room. At most one pending invite may
// exist per (room, invited user) pair; accept and reject are terminal.
type GroupInvite struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	RoomID      uint         `gorm:"not null;index:idx_invite_room_user" json:"room_id"`
	Room        *Room        `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	InvitedBy   uint         `gorm:"not null" json:"invited_by"`
	Inviter     *User        `gorm:"foreignKey:InvitedBy" json:"inviter,omitempty"`
	InvitedUser uint         `gorm:"not null;index:idx_invite_room_user" json:"invited_user"`
	Invitee     *User        `gorm:"foreignKey:InvitedUser" json:"invitee,omitempty"`
	Status      InviteStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (GroupInvite) TableName() string {
	return "group_invites"
}
