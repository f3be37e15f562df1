package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
	"github.com/ganapathi9191/Social-media-sub000/internal/repository"
)

// GraphService maintains the follow/block graph and answers the
// eligibility questions derived from it (who may chat, who may see a
// profile). For any pair of users the relationship is exactly one of
// none, requested, following or blocked.
type GraphService struct {
	db      *gorm.DB
	repo    *repository.Repository
	emitter notify.Emitter
}

// NewGraphService creates a new GraphService
func NewGraphService(db *gorm.DB, repo *repository.Repository, emitter notify.Emitter) *GraphService {
	return &GraphService{db: db, repo: repo, emitter: emitter}
}

// SendFollowRequest records a pending follow request from subject to
// target.
func (s *GraphService) SendFollowRequest(ctx context.Context, subjectID, targetID uint) error {
	if subjectID == targetID {
		return ErrSelfFollow
	}

	if err := s.checkActiveUser(targetID); err != nil {
		return err
	}

	blocked, err := s.repo.AnyBlockBetween(ctx, subjectID, targetID)
	if err != nil {
		return err
	}
	if blocked {
		return ErrBlocked
	}

	existing, err := s.repo.FindFollow(ctx, subjectID, targetID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.State == models.FollowStateAccepted {
			return ErrAlreadyFollowing
		}
		return ErrDuplicateRequest
	}

	follow := models.Follow{
		FollowerID: subjectID,
		FolloweeID: targetID,
		State:      models.FollowStateRequested,
	}
	if err := s.repo.CreateFollow(ctx, &follow); err != nil {
		return fmt.Errorf("failed to create follow request: %w", err)
	}

	s.emitter.Emit(notify.Event{
		RecipientID: targetID,
		SenderID:    subjectID,
		Type:        models.NotifyFollowRequest,
		Message:     "sent you a follow request",
	})

	return nil
}

// ApproveFollowRequest accepts a pending request. Flipping the single edge
// row to accepted makes the requester a follower of the approver and the
// approver part of the requester's following in one write, so no torn
// state is observable.
func (s *GraphService) ApproveFollowRequest(ctx context.Context, approverID, requesterID uint) error {
	changed, err := s.repo.SetFollowState(ctx, requesterID, approverID,
		models.FollowStateRequested, models.FollowStateAccepted)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNoSuchRequest
	}

	s.emitter.Emit(notify.Event{
		RecipientID: requesterID,
		SenderID:    approverID,
		Type:        models.NotifyFollowApproved,
		Message:     "approved your follow request",
	})

	return nil
}

// RejectFollowRequest drops a pending request without creating any follow
// state.
func (s *GraphService) RejectFollowRequest(ctx context.Context, ownerID, requesterID uint) error {
	changed, err := s.repo.DeleteFollow(ctx, requesterID, ownerID, models.FollowStateRequested)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNoSuchRequest
	}
	return nil
}

// BlockUser severs every follow edge between the pair, pending requests
// included, then records the block. Blocking an already-blocked user is a
// no-op.
func (s *GraphService) BlockUser(ctx context.Context, subjectID, targetID uint) error {
	if subjectID == targetID {
		return ErrSelfBlock
	}

	if err := s.checkActiveUser(targetID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if err := repo.DeleteEdgesBetween(ctx, subjectID, targetID); err != nil {
			return fmt.Errorf("failed to sever follow edges: %w", err)
		}

		if _, err := repo.CreateBlock(ctx, subjectID, targetID); err != nil {
			return fmt.Errorf("failed to create block: %w", err)
		}

		return nil
	})
}

// UnblockUser removes the block. Prior follow state is not restored.
func (s *GraphService) UnblockUser(ctx context.Context, subjectID, targetID uint) error {
	_, err := s.repo.DeleteBlock(ctx, subjectID, targetID)
	return err
}

// RemoveFollower unilaterally drops followerID from owner's followers.
func (s *GraphService) RemoveFollower(ctx context.Context, ownerID, followerID uint) error {
	changed, err := s.repo.DeleteFollow(ctx, followerID, ownerID, models.FollowStateAccepted)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFollower
	}
	return nil
}

// RemoveFollowing drops followeeID from owner's following.
func (s *GraphService) RemoveFollowing(ctx context.Context, ownerID, followeeID uint) error {
	changed, err := s.repo.DeleteFollow(ctx, ownerID, followeeID, models.FollowStateAccepted)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFollowing
	}
	return nil
}

// CanChat is true only for mutual follows. One direction is not enough.
func (s *GraphService) CanChat(ctx context.Context, a, b uint) (bool, error) {
	forward, err := s.repo.AcceptedEdgeExists(ctx, a, b)
	if err != nil {
		return false, err
	}
	if !forward {
		return false, nil
	}
	return s.repo.AcceptedEdgeExists(ctx, b, a)
}

// ResolveVisibility decides whether viewer may see subject's profile.
func (s *GraphService) ResolveVisibility(ctx context.Context, viewerID, subjectID uint) (bool, error) {
	if viewerID == subjectID {
		return true, nil
	}

	var subject models.User
	if err := s.db.WithContext(ctx).First(&subject, subjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if subject.Visibility == models.VisibilityPublic {
		return true, nil
	}

	return s.repo.AcceptedEdgeExists(ctx, viewerID, subjectID)
}

// FollowStatus derives the status of b from a's perspective. Blocked wins
// over following, following over requested.
func (s *GraphService) FollowStatus(ctx context.Context, a, b uint) (models.RelationStatus, error) {
	blocked, err := s.repo.BlockExists(ctx, a, b)
	if err != nil {
		return "", err
	}
	if blocked {
		return models.RelationBlocked, nil
	}

	follow, err := s.repo.FindFollow(ctx, a, b)
	if err != nil {
		return "", err
	}
	if follow != nil {
		if follow.State == models.FollowStateAccepted {
			return models.RelationFollowing, nil
		}
		return models.RelationRequested, nil
	}

	return models.RelationNotFollowing, nil
}

// Followers lists the accepted followers of a user.
func (s *GraphService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.repo.ListFollowers(ctx, userID)
}

// Following lists the users a user follows.
func (s *GraphService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.repo.ListFollowing(ctx, userID)
}

// PendingRequests lists the users with a pending request to follow userID.
func (s *GraphService) PendingRequests(ctx context.Context, userID uint) ([]models.User, error) {
	return s.repo.ListRequests(ctx, userID)
}

// BlockedUsers lists the users userID has blocked.
func (s *GraphService) BlockedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.repo.ListBlocked(ctx, userID)
}

// FollowCounts returns follower and following counts for a profile.
func (s *GraphService) FollowCounts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.repo.FollowCounts(ctx, userID)
}

func (s *GraphService) checkActiveUser(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	if user.Deactivated {
		return ErrAccountDeactivated
	}
	return nil
}
