package models

import (
	"time"
)

type FollowState string

const (
	FollowStateRequested FollowState = "requested"
	FollowStateAccepted  FollowState = "accepted"
)

// Derived relationship status between two users, highest priority first.
type RelationStatus string

const (
	RelationBlocked      RelationStatus = "blocked"
	RelationFollowing    RelationStatus = "following"
	RelationRequested    RelationStatus = "requested"
	RelationNotFollowing RelationStatus = "not_following"
)

// Follow is a directed edge in the follow graph. An accepted row means
// FollowerID appears in FolloweeID's followers and FolloweeID appears in
// FollowerID's following, so the two mirrored sets of the original design
// can never disagree.
type Follow struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	FollowerID uint        `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"follower_id"`
	Follower   *User       `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FolloweeID uint        `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followee_id"`
	Followee   *User       `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
	State      FollowState `gorm:"size:20;not null;default:requested;index" json:"state"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// Block records that BlockerID has blocked BlockedID. Creating a block
// severs every follow edge between the pair in the same transaction.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair;index" json:"blocker_id"`
	Blocker   *User     `gorm:"foreignKey:BlockerID" json:"blocker,omitempty"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	Blocked   *User     `gorm:"foreignKey:BlockedID" json:"blocked,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Block) TableName() string {
	return "blocks"
}
