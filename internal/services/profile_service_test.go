package services

import (
	"errors"
	"testing"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
)

func TestEnsureProfileIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	user := createUser(t, db, "alice")

	first, err := svc.EnsureProfile(user.ID)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if first.Visibility != models.VisibilityPublic {
		t.Fatalf("default visibility = %q, want %q", first.Visibility, models.VisibilityPublic)
	}

	second, err := svc.EnsureProfile(user.ID)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second ensure created profile %d, want %d", second.ID, first.ID)
	}

	var rows int64
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&rows)
	if rows != 1 {
		t.Fatalf("profile rows = %d, want 1", rows)
	}
}

func TestGetProfileForMissingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	if _, err := svc.GetProfile(9999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	user := createUser(t, db, "alice")

	bio := "gopher"
	visibility := models.VisibilityFollowersOnly
	updated, err := svc.UpdateProfile(user.ID, &models.UpdateProfileRequest{Bio: &bio, Visibility: &visibility})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Bio != "gopher" || updated.Visibility != models.VisibilityFollowersOnly {
		t.Fatalf("updated profile = bio %q visibility %q", updated.Bio, updated.Visibility)
	}

	// an omitted field is left alone
	location := "berlin"
	updated, err = svc.UpdateProfile(user.ID, &models.UpdateProfileRequest{Location: &location})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.Bio != "gopher" {
		t.Fatalf("bio after partial update = %q, want %q", updated.Bio, "gopher")
	}
	if updated.Location != "berlin" {
		t.Fatalf("location = %q, want %q", updated.Location, "berlin")
	}
}
