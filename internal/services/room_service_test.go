package services

import (
	"testing"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

func TestInviteSinglePendingPerUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db, &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)

	room, err := service.CreateRoom(1, "Weekend Crew")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if room.Code == "" {
		t.Error("room must get a join code")
	}

	invite, err := service.InviteMember(room.ID, 1, 2)
	if err != nil {
		t.Fatalf("InviteMember failed: %v", err)
	}
	if invite.Status != models.InviteStatusPending {
		t.Errorf("expected pending invite, got %s", invite.Status)
	}

	if _, err := service.InviteMember(room.ID, 1, 2); err != ErrDuplicateInvite {
		t.Errorf("expected ErrDuplicateInvite, got %v", err)
	}
}

func TestInviteAcceptAddsMembership(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db, &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)

	room, err := service.CreateRoom(1, "Readers")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	invite, err := service.InviteMember(room.ID, 1, 2)
	if err != nil {
		t.Fatalf("InviteMember failed: %v", err)
	}

	if err := service.RespondToInvite(invite.ID, 2, true); err != nil {
		t.Fatalf("RespondToInvite failed: %v", err)
	}

	members, err := service.RoomMembers(room.ID, 2)
	if err != nil {
		t.Fatalf("RoomMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members after accept, got %d", len(members))
	}

	// Terminal: the invite cannot be answered twice.
	if err := service.RespondToInvite(invite.ID, 2, false); err != ErrInviteFinalized {
		t.Errorf("expected ErrInviteFinalized, got %v", err)
	}

	// A member cannot be invited again.
	if _, err := service.InviteMember(room.ID, 1, 2); err != ErrAlreadyMember {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestInviteRejectLeavesNoMembership(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db, &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)

	room, _ := service.CreateRoom(1, "Quiet Room")
	invite, err := service.InviteMember(room.ID, 1, 2)
	if err != nil {
		t.Fatalf("InviteMember failed: %v", err)
	}

	if err := service.RespondToInvite(invite.ID, 2, false); err != nil {
		t.Fatalf("RespondToInvite failed: %v", err)
	}

	if _, err := service.RoomMembers(room.ID, 2); err != ErrNotRoomMember {
		t.Errorf("rejected invitee must not be a member, got %v", err)
	}

	// After rejection a fresh invite is allowed again.
	if _, err := service.InviteMember(room.ID, 1, 2); err != nil {
		t.Errorf("re-invite after rejection failed: %v", err)
	}
}

func TestInviteRequiresInviterMembership(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db, &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)

	room, _ := service.CreateRoom(1, "Members Only")
	if _, err := service.InviteMember(room.ID, 2, 3); err != ErrNotRoomMember {
		t.Errorf("expected ErrNotRoomMember, got %v", err)
	}
}

func TestRespondToForeignInvite(t *testing.T) {
	db := setupTestDB(t)
	service := NewRoomService(db, &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)

	room, _ := service.CreateRoom(1, "Private")
	invite, _ := service.InviteMember(room.ID, 1, 2)

	if err := service.RespondToInvite(invite.ID, 3, true); err != ErrInviteNotFound {
		t.Errorf("expected ErrInviteNotFound for wrong user, got %v", err)
	}
}
