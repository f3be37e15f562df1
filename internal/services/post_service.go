package services

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/media"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_]+)`)

// PostService handles posts, likes, comments and mentions.
type PostService struct {
	db          *gorm.DB
	wallets     *WalletService
	graph       *GraphService
	media       media.Store
	emitter     notify.Emitter
	rewardCoins int64
}

// NewPostService creates a new PostService
func NewPostService(db *gorm.DB, wallets *WalletService, graph *GraphService, store media.Store, emitter notify.Emitter, rewardCoins int64) *PostService {
	return &PostService{
		db:          db,
		wallets:     wallets,
		graph:       graph,
		media:       store,
		emitter:     emitter,
		rewardCoins: rewardCoins,
	}
}

// CreatePost stores the media blob with the media collaborator, records the
// post and credits the configured post reward. Mention and follower
// notifications go out fire-and-forget after commit.
func (s *PostService) CreatePost(ctx context.Context, userID uint, caption string, mediaType models.MediaType, filename string, data []byte) (*models.Post, error) {
	switch mediaType {
	case models.MediaImage, models.MediaVideo, models.MediaAudio, models.MediaFile:
	default:
		return nil, fmt.Errorf("unsupported media type: %s", mediaType)
	}

	var mediaURL string
	if len(data) > 0 {
		url, err := s.media.Save(filename, data)
		if err != nil {
			return nil, fmt.Errorf("failed to store media: %w", err)
		}
		mediaURL = url
	}

	post := models.Post{
		UserID:    userID,
		Caption:   caption,
		MediaType: mediaType,
		MediaURL:  mediaURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		if s.rewardCoins > 0 {
			return s.wallets.creditTx(tx, userID, s.rewardCoins, models.EntryPostReward,
				fmt.Sprintf("Reward for post %d", post.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyMentions(userID, caption, &post.ID)

	followers, err := s.graph.Followers(ctx, userID)
	if err == nil {
		for _, follower := range followers {
			s.emitter.Emit(notify.Event{
				RecipientID:   follower.ID,
				SenderID:      userID,
				Type:          models.NotifyPost,
				RelatedPostID: &post.ID,
				Message:       "shared a new post",
			})
		}
	}

	return &post, nil
}

// GetPost returns a post if the viewer may see its owner's profile.
func (s *PostService) GetPost(ctx context.Context, viewerID, postID uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	visible, err := s.graph.ResolveVisibility(ctx, viewerID, post.UserID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotVisible
	}

	return &post, nil
}

// ListUserPosts returns a user's posts, subject to profile visibility.
func (s *PostService) ListUserPosts(ctx context.Context, viewerID, ownerID uint, limit int) ([]models.Post, error) {
	visible, err := s.graph.ResolveVisibility(ctx, viewerID, ownerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotVisible
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var posts []models.Post
	err = s.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Feed returns recent posts from the viewer and the users they follow.
func (s *PostService) Feed(ctx context.Context, viewerID uint, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var posts []models.Post
	err := s.db.Preload("User").
		Where("user_id = ? OR user_id IN (?)", viewerID,
			s.db.Model(&models.Follow{}).Select("followee_id").
				Where("follower_id = ? AND state = ?", viewerID, models.FollowStateAccepted)).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// LikePost records a like, once per user per post.
func (s *PostService) LikePost(userID, postID uint) error {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrPostNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyLiked
	}

	like := models.Like{PostID: postID, UserID: userID}
	if err := s.db.Create(&like).Error; err != nil {
		return fmt.Errorf("failed to record like: %w", err)
	}

	if post.UserID != userID {
		s.emitter.Emit(notify.Event{
			RecipientID:   post.UserID,
			SenderID:      userID,
			Type:          models.NotifyLike,
			RelatedPostID: &postID,
			Message:       "liked your post",
		})
	}

	return nil
}

// UnlikePost removes a like. Idempotent.
func (s *PostService) UnlikePost(userID, postID uint) error {
	return s.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
}

// CommentPost adds a comment and notifies the post owner plus anyone
// mentioned in the body.
func (s *PostService) CommentPost(userID, postID uint, body string) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if post.UserID != userID {
		s.emitter.Emit(notify.Event{
			RecipientID:   post.UserID,
			SenderID:      userID,
			Type:          models.NotifyComment,
			RelatedPostID: &postID,
			Message:       "commented on your post",
		})
	}

	s.notifyMentions(userID, body, &postID)

	return &comment, nil
}

// ListComments returns a post's comments, oldest first.
func (s *PostService) ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// notifyMentions resolves @username references and emits a mention event
// for each, skipping self-mentions and unknown names.
func (s *PostService) notifyMentions(senderID uint, text string, relatedPostID *uint) {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]bool)
	for _, match := range matches {
		username := match[1]
		if seen[username] {
			continue
		}
		seen[username] = true

		var user models.User
		if err := s.db.Where("username = ? AND deactivated = ?", username, false).
			First(&user).Error; err != nil {
			continue
		}
		if user.ID == senderID {
			continue
		}

		s.emitter.Emit(notify.Event{
			RecipientID:   user.ID,
			SenderID:      senderID,
			Type:          models.NotifyMention,
			RelatedPostID: relatedPostID,
			Message:       "mentioned you",
		})
	}
}
