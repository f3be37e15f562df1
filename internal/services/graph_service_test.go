package services

import (
	"context"
	"testing"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
	"github.com/ganapathi9191/Social-media-sub000/internal/repository"
)

func newGraphService(t *testing.T) (*GraphService, *captureEmitter) {
	db := setupTestDB(t)
	emitter := &captureEmitter{}
	return NewGraphService(db, repository.NewRepository(db), emitter), emitter
}

func TestFollowRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	service, emitter := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	if err := service.SendFollowRequest(ctx, 1, 2); err != nil {
		t.Fatalf("SendFollowRequest failed: %v", err)
	}

	if err := service.SendFollowRequest(ctx, 1, 2); err != ErrDuplicateRequest {
		t.Errorf("expected ErrDuplicateRequest, got %v", err)
	}

	status, err := service.FollowStatus(ctx, 1, 2)
	if err != nil {
		t.Fatalf("FollowStatus failed: %v", err)
	}
	if status != models.RelationRequested {
		t.Errorf("expected requested, got %s", status)
	}

	if err := service.ApproveFollowRequest(ctx, 2, 1); err != nil {
		t.Fatalf("ApproveFollowRequest failed: %v", err)
	}

	// All three effects must hold together: follower edge, mirrored
	// following edge, request gone.
	followers, err := service.Followers(ctx, 2)
	if err != nil {
		t.Fatalf("Followers failed: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != 1 {
		t.Errorf("expected user 1 in user 2's followers, got %v", followers)
	}

	following, err := service.Following(ctx, 1)
	if err != nil {
		t.Fatalf("Following failed: %v", err)
	}
	if len(following) != 1 || following[0].ID != 2 {
		t.Errorf("expected user 2 in user 1's following, got %v", following)
	}

	pending, err := service.PendingRequests(ctx, 2)
	if err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending requests, got %d", len(pending))
	}

	if err := service.SendFollowRequest(ctx, 1, 2); err != ErrAlreadyFollowing {
		t.Errorf("expected ErrAlreadyFollowing, got %v", err)
	}

	if len(emitter.events) != 2 {
		t.Errorf("expected 2 notifications (request + approval), got %d", len(emitter.events))
	}
}

func TestApproveWithoutRequest(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	if err := service.ApproveFollowRequest(ctx, 2, 1); err != ErrNoSuchRequest {
		t.Errorf("expected ErrNoSuchRequest, got %v", err)
	}
}

func TestRejectRequestLeavesNoFollowState(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	if err := service.SendFollowRequest(ctx, 1, 2); err != nil {
		t.Fatalf("SendFollowRequest failed: %v", err)
	}
	if err := service.RejectFollowRequest(ctx, 2, 1); err != nil {
		t.Fatalf("RejectFollowRequest failed: %v", err)
	}

	if err := service.RejectFollowRequest(ctx, 2, 1); err != ErrNoSuchRequest {
		t.Errorf("expected ErrNoSuchRequest on second reject, got %v", err)
	}

	status, _ := service.FollowStatus(ctx, 1, 2)
	if status != models.RelationNotFollowing {
		t.Errorf("expected not_following after reject, got %s", status)
	}

	followers, _ := service.Followers(ctx, 2)
	if len(followers) != 0 {
		t.Errorf("reject must not create a follow, got %d followers", len(followers))
	}
}

func TestSelfFollowRejected(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)

	if err := service.SendFollowRequest(ctx, 1, 1); err != ErrSelfFollow {
		t.Errorf("expected ErrSelfFollow, got %v", err)
	}
}

func TestCanChatRequiresMutualFollow(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	mustFollow(t, service, 1, 2)

	ok, err := service.CanChat(ctx, 1, 2)
	if err != nil {
		t.Fatalf("CanChat failed: %v", err)
	}
	if ok {
		t.Error("one-directional follow must not allow chat")
	}

	mustFollow(t, service, 2, 1)

	ok, err = service.CanChat(ctx, 1, 2)
	if err != nil {
		t.Fatalf("CanChat failed: %v", err)
	}
	if !ok {
		t.Error("mutual follow must allow chat")
	}
}

func TestBlockSeversBothDirectionsAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	mustFollow(t, service, 1, 2)
	mustFollow(t, service, 2, 1)

	if err := service.BlockUser(ctx, 1, 2); err != nil {
		t.Fatalf("BlockUser failed: %v", err)
	}
	if err := service.BlockUser(ctx, 1, 2); err != nil {
		t.Fatalf("second BlockUser must be a no-op, got %v", err)
	}

	status, _ := service.FollowStatus(ctx, 1, 2)
	if status != models.RelationBlocked {
		t.Errorf("expected blocked, got %s", status)
	}

	for _, userID := range []uint{1, 2} {
		followers, _ := service.Followers(ctx, userID)
		following, _ := service.Following(ctx, userID)
		if len(followers) != 0 || len(following) != 0 {
			t.Errorf("user %d still has follow edges after block", userID)
		}
	}

	ok, _ := service.CanChat(ctx, 1, 2)
	if ok {
		t.Error("blocked users must not chat")
	}

	// A pending request in either direction is also impossible now.
	if err := service.SendFollowRequest(ctx, 2, 1); err != ErrBlocked {
		t.Errorf("expected ErrBlocked, got %v", err)
	}
}

func TestUnblockDoesNotRestoreFollows(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)

	mustFollow(t, service, 1, 2)
	if err := service.BlockUser(ctx, 2, 1); err != nil {
		t.Fatalf("BlockUser failed: %v", err)
	}
	if err := service.UnblockUser(ctx, 2, 1); err != nil {
		t.Fatalf("UnblockUser failed: %v", err)
	}
	if err := service.UnblockUser(ctx, 2, 1); err != nil {
		t.Fatalf("second UnblockUser must be a no-op, got %v", err)
	}

	status, _ := service.FollowStatus(ctx, 1, 2)
	if status != models.RelationNotFollowing {
		t.Errorf("expected not_following after unblock, got %s", status)
	}
}

func TestRemoveFollowerAndFollowing(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	createTestUser(t, service.db, 2)
	createTestUser(t, service.db, 3)

	mustFollow(t, service, 1, 2)
	mustFollow(t, service, 2, 3)

	// User 2 removes follower 1: unilateral, no approval needed.
	if err := service.RemoveFollower(ctx, 2, 1); err != nil {
		t.Fatalf("RemoveFollower failed: %v", err)
	}
	if err := service.RemoveFollower(ctx, 2, 1); err != ErrNotFollower {
		t.Errorf("expected ErrNotFollower, got %v", err)
	}
	following, _ := service.Following(ctx, 1)
	if len(following) != 0 {
		t.Error("mirror side not severed by RemoveFollower")
	}

	// User 2 stops following 3.
	if err := service.RemoveFollowing(ctx, 2, 3); err != nil {
		t.Fatalf("RemoveFollowing failed: %v", err)
	}
	followers, _ := service.Followers(ctx, 3)
	if len(followers) != 0 {
		t.Error("mirror side not severed by RemoveFollowing")
	}
}

func TestResolveVisibility(t *testing.T) {
	ctx := context.Background()
	service, _ := newGraphService(t)
	createTestUser(t, service.db, 1)
	subject := createTestUser(t, service.db, 2)
	createTestUser(t, service.db, 3)

	subject.Visibility = models.VisibilityPrivate
	if err := service.db.Save(subject).Error; err != nil {
		t.Fatalf("failed to update visibility: %v", err)
	}

	visible, err := service.ResolveVisibility(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ResolveVisibility failed: %v", err)
	}
	if visible {
		t.Error("private profile must not be visible to strangers")
	}

	mustFollow(t, service, 1, 2)
	visible, _ = service.ResolveVisibility(ctx, 1, 2)
	if !visible {
		t.Error("private profile must be visible to accepted followers")
	}

	// Public profiles are visible to anyone.
	visible, _ = service.ResolveVisibility(ctx, 2, 3)
	if !visible {
		t.Error("public profile must be visible")
	}

	// Owners always see themselves.
	visible, _ = service.ResolveVisibility(ctx, 2, 2)
	if !visible {
		t.Error("owner must see own profile")
	}
}

// mustFollow creates and approves a follow from a to b.
func mustFollow(t *testing.T, service *GraphService, a, b uint) {
	t.Helper()
	ctx := context.Background()
	if err := service.SendFollowRequest(ctx, a, b); err != nil {
		t.Fatalf("SendFollowRequest(%d,%d) failed: %v", a, b, err)
	}
	if err := service.ApproveFollowRequest(ctx, b, a); err != nil {
		t.Fatalf("ApproveFollowRequest(%d,%d) failed: %v", b, a, err)
	}
}

var _ notify.Emitter = (*captureEmitter)(nil)
