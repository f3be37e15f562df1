package repository

import (
	"context"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository owns the follow/block edge rows of the relationship graph.
// Add and remove operations report whether they changed anything, which is
// what makes idempotency checks in the graph service cheap.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to an open transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindFollow returns the directed edge follower->followee, or nil when none
// exists.
func (r *Repository) FindFollow(ctx context.Context, followerID, followeeID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// CreateFollow inserts a new edge.
func (r *Repository) CreateFollow(ctx context.Context, follow *models.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// SetFollowState updates the state of an edge identified by its endpoints.
// Returns false when no edge in fromState exists.
func (r *Repository) SetFollowState(ctx context.Context, followerID, followeeID uint, fromState, toState models.FollowState) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ? AND state = ?", followerID, followeeID, fromState).
		Update("state", toState)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteFollow removes the edge follower->followee in the given state.
// Returns false when there was nothing to remove.
func (r *Repository) DeleteFollow(ctx context.Context, followerID, followeeID uint, state models.FollowState) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ? AND state = ?", followerID, followeeID, state).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteEdgesBetween removes every follow edge between the two users in
// both directions, whatever the state.
func (r *Repository) DeleteEdgesBetween(ctx context.Context, a, b uint) error {
	return r.db.WithContext(ctx).
		Where("(follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)", a, b, b, a).
		Delete(&models.Follow{}).Error
}

// AcceptedEdgeExists reports whether follower->followee is an accepted
// follow.
func (r *Repository) AcceptedEdgeExists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ? AND state = ?", followerID, followeeID, models.FollowStateAccepted).
		Count(&count).Error
	return count > 0, err
}

// AnyAcceptedBetween reports whether an accepted follow links the two users
// in either direction.
func (r *Repository) AnyAcceptedBetween(ctx context.Context, a, b uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("((follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)) AND state = ?",
			a, b, b, a, models.FollowStateAccepted).
		Count(&count).Error
	return count > 0, err
}

// CreateBlock inserts the block edge blocker->blocked. Returns false when
// the block already existed.
func (r *Repository) CreateBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	block := models.Block{BlockerID: blockerID, BlockedID: blockedID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&block)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteBlock removes the block edge blocker->blocked. Returns false when
// there was no block.
func (r *Repository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// BlockExists reports whether blocker has blocked blocked.
func (r *Repository) BlockExists(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

// AnyBlockBetween reports whether either user has blocked the other.
func (r *Repository) AnyBlockBetween(ctx context.Context, a, b uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// ListFollowers returns the users who follow userID (accepted edges only).
func (r *Repository) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ? AND follows.state = ?", userID, models.FollowStateAccepted).
		Find(&users).Error
	return users, err
}

// ListFollowing returns the users userID follows (accepted edges only).
func (r *Repository) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ? AND follows.state = ?", userID, models.FollowStateAccepted).
		Find(&users).Error
	return users, err
}

// ListRequests returns the users with a pending follow request to userID.
func (r *Repository) ListRequests(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ? AND follows.state = ?", userID, models.FollowStateRequested).
		Find(&users).Error
	return users, err
}

// ListBlocked returns the users userID has blocked.
func (r *Repository) ListBlocked(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN blocks ON blocks.blocked_id = users.id").
		Where("blocks.blocker_id = ?", userID).
		Find(&users).Error
	return users, err
}

// FollowCounts returns accepted follower and following counts for a user.
func (r *Repository) FollowCounts(ctx context.Context, userID uint) (followers int64, following int64, err error) {
	if err = r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("followee_id = ? AND state = ?", userID, models.FollowStateAccepted).
		Count(&followers).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND state = ?", userID, models.FollowStateAccepted).
		Count(&following).Error; err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
