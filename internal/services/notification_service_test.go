package services

import (
	"errors"
	"testing"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
)

func TestInboxListingAndUnreadCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	recipient := createUser(t, db, "recipient")
	sender := createUser(t, db, "sender")

	for i := 0; i < 5; i++ {
		db.Create(&models.Notification{RecipientID: recipient.ID, SenderID: sender.ID, Type: models.NotificationTypeFollow, Message: "sender started following you"})
	}
	for i := 0; i < 2; i++ {
		db.Create(&models.Notification{RecipientID: recipient.ID, SenderID: sender.ID, Type: models.NotificationTypeFollow, Message: "sender started following you", IsRead: true})
	}

	items, total, err := svc.List(recipient.ID, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 7 || len(items) != 7 {
		t.Fatalf("list = %d items, total %d, want 7/7", len(items), total)
	}

	unread, err := svc.UnreadCount(recipient.ID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if unread != 5 {
		t.Fatalf("unread = %d, want 5", unread)
	}
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	recipient := createUser(t, db, "recipient")
	sender := createUser(t, db, "sender")
	for i := 0; i < 5; i++ {
		db.Create(&models.Notification{RecipientID: recipient.ID, SenderID: sender.ID, Type: models.NotificationTypeLike, Message: "sender liked your post"})
	}
	db.Create(&models.Notification{RecipientID: recipient.ID, SenderID: sender.ID, Type: models.NotificationTypeLike, Message: "sender liked your post", IsRead: true})

	for pass := 0; pass < 2; pass++ {
		if err := svc.MarkAllRead(recipient.ID); err != nil {
			t.Fatalf("mark all read pass %d: %v", pass, err)
		}
		unread, err := svc.UnreadCount(recipient.ID)
		if err != nil {
			t.Fatalf("unread count: %v", err)
		}
		if unread != 0 {
			t.Fatalf("unread after pass %d = %d, want 0", pass, unread)
		}
	}

	_, total, err := svc.List(recipient.ID, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 6 {
		t.Fatalf("total = %d, want 6", total)
	}
}

func TestMarkReadOwnershipAndIdempotence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	recipient := createUser(t, db, "recipient")
	sender := createUser(t, db, "sender")
	intruder := createUser(t, db, "intruder")

	n := &models.Notification{RecipientID: recipient.ID, SenderID: sender.ID, Type: models.NotificationTypeComment, Message: "sender commented on your post"}
	db.Create(n)

	if err := svc.MarkRead(intruder.ID, n.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("mark read by intruder error = %v, want ErrNotFound", err)
	}

	if err := svc.MarkRead(recipient.ID, n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := svc.MarkRead(recipient.ID, n.ID); err != nil {
		t.Fatalf("repeated mark read: %v", err)
	}

	unread, err := svc.UnreadCount(recipient.ID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if unread != 0 {
		t.Fatalf("unread = %d, want 0", unread)
	}

	if err := svc.MarkRead(recipient.ID, 9999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("mark read of missing notification error = %v, want ErrNotFound", err)
	}
}
