package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/media"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/repository"
)

func newPostService(t *testing.T, db *gorm.DB, rewardCoins int64) (*PostService, *captureEmitter) {
	t.Helper()
	emitter := &captureEmitter{}
	wallets := NewWalletService(db, 10)
	graph := NewGraphService(db, repository.NewRepository(db), emitter)
	store, err := media.NewLocalStore(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	return NewPostService(db, wallets, graph, store, emitter, rewardCoins), emitter
}

func TestCreatePostRewardsAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	service, emitter := newPostService(t, db, 3)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)
	seedFriendship(t, db, 2, 1) // user 2 follows user 1

	post, err := service.CreatePost(context.Background(), 1, "hello @user3", models.MediaImage, "pic.jpg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if post.MediaURL == "" {
		t.Error("post must carry a media URL")
	}

	// Author gets the post reward on top of the wallet starting bonus.
	if balance := walletBalance(t, db, 1); balance != 13 {
		t.Errorf("expected balance 13 after post reward, got %d", balance)
	}

	var mentionSeen, followerSeen bool
	for _, event := range emitter.events {
		switch {
		case event.Type == models.NotifyMention && event.RecipientID == 3:
			mentionSeen = true
		case event.Type == models.NotifyPost && event.RecipientID == 2:
			followerSeen = true
		}
	}
	if !mentionSeen {
		t.Error("mentioned user did not get a notification")
	}
	if !followerSeen {
		t.Error("follower did not get a new-post notification")
	}
}

func TestMentionsSkipSelfAndUnknown(t *testing.T) {
	db := setupTestDB(t)
	service, emitter := newPostService(t, db, 0)
	createTestUser(t, db, 1)

	_, err := service.CreatePost(context.Background(), 1, "@user1 @nobody @user1", models.MediaImage, "", nil)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	for _, event := range emitter.events {
		if event.Type == models.NotifyMention {
			t.Errorf("unexpected mention notification for user %d", event.RecipientID)
		}
	}
}

func TestLikeOncePerUser(t *testing.T) {
	db := setupTestDB(t)
	service, emitter := newPostService(t, db, 0)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)

	post, err := service.CreatePost(context.Background(), 1, "caption", models.MediaImage, "", nil)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if err := service.LikePost(2, post.ID); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}
	if err := service.LikePost(2, post.ID); err != ErrAlreadyLiked {
		t.Errorf("expected ErrAlreadyLiked, got %v", err)
	}

	var likeEvents int
	for _, event := range emitter.events {
		if event.Type == models.NotifyLike {
			likeEvents++
		}
	}
	if likeEvents != 1 {
		t.Errorf("expected exactly 1 like notification, got %d", likeEvents)
	}

	// Unlike is idempotent; a fresh like is allowed afterwards.
	if err := service.UnlikePost(2, post.ID); err != nil {
		t.Fatalf("UnlikePost failed: %v", err)
	}
	if err := service.UnlikePost(2, post.ID); err != nil {
		t.Fatalf("repeated UnlikePost failed: %v", err)
	}
	if err := service.LikePost(2, post.ID); err != nil {
		t.Errorf("like after unlike failed: %v", err)
	}
}

func TestSelfLikeIsSilent(t *testing.T) {
	db := setupTestDB(t)
	service, emitter := newPostService(t, db, 0)
	createTestUser(t, db, 1)

	post, _ := service.CreatePost(context.Background(), 1, "caption", models.MediaImage, "", nil)
	if err := service.LikePost(1, post.ID); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}
	for _, event := range emitter.events {
		if event.Type == models.NotifyLike {
			t.Error("liking your own post must not notify")
		}
	}
}

func TestCommentNotifiesOwnerAndMentions(t *testing.T) {
	db := setupTestDB(t)
	service, emitter := newPostService(t, db, 0)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)

	post, _ := service.CreatePost(context.Background(), 1, "caption", models.MediaImage, "", nil)
	if _, err := service.CommentPost(2, post.ID, "nice one @user3"); err != nil {
		t.Fatalf("CommentPost failed: %v", err)
	}

	var ownerNotified, mentionNotified bool
	for _, event := range emitter.events {
		switch {
		case event.Type == models.NotifyComment && event.RecipientID == 1:
			ownerNotified = true
		case event.Type == models.NotifyMention && event.RecipientID == 3:
			mentionNotified = true
		}
	}
	if !ownerNotified {
		t.Error("post owner did not get a comment notification")
	}
	if !mentionNotified {
		t.Error("mentioned user did not get a notification")
	}

	comments, err := service.ListComments(post.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("expected 1 comment, got %d", len(comments))
	}
}

func TestVisibilityGatesPosts(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newPostService(t, db, 0)
	owner := createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)

	owner.Visibility = models.VisibilityPrivate
	if err := db.Save(owner).Error; err != nil {
		t.Fatalf("failed to make profile private: %v", err)
	}
	seedFriendship(t, db, 2, 1) // user 2 follows the private owner

	ctx := context.Background()
	post, err := service.CreatePost(ctx, 1, "private stuff", models.MediaImage, "", nil)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if _, err := service.GetPost(ctx, 2, post.ID); err != nil {
		t.Errorf("follower must see the private post, got %v", err)
	}
	if _, err := service.GetPost(ctx, 3, post.ID); err != ErrNotVisible {
		t.Errorf("stranger must be blocked, got %v", err)
	}
	if _, err := service.ListUserPosts(ctx, 3, 1, 10); err != ErrNotVisible {
		t.Errorf("expected ErrNotVisible for stranger listing, got %v", err)
	}
}

func TestFeedContainsOwnAndFollowedPosts(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newPostService(t, db, 0)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)
	seedFriendship(t, db, 1, 2) // user 1 follows user 2

	ctx := context.Background()
	mine, _ := service.CreatePost(ctx, 1, "mine", models.MediaImage, "", nil)
	followed, _ := service.CreatePost(ctx, 2, "followed", models.MediaImage, "", nil)
	service.CreatePost(ctx, 3, "stranger", models.MediaImage, "", nil)

	feed, err := service.Feed(ctx, 1, 10)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 feed posts, got %d", len(feed))
	}
	ids := map[uint]bool{feed[0].ID: true, feed[1].ID: true}
	if !ids[mine.ID] || !ids[followed.ID] {
		t.Errorf("feed missing expected posts, got %v", ids)
	}
}

func TestCreatePostRejectsUnknownMediaType(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newPostService(t, db, 0)
	createTestUser(t, db, 1)

	if _, err := service.CreatePost(context.Background(), 1, "x", models.MediaType("gif"), "", nil); err == nil {
		t.Error("expected error for unsupported media type")
	}
}
