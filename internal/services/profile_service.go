package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"gorm.io/gorm"
)

// ProfileService owns the lazy get-or-create lifecycle of profiles.
// EnsureProfile is the idempotent precondition every profile-touching
// operation calls first.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// EnsureProfile returns the profile for userID, creating it if missing.
// A concurrent create racing on the user_id unique index folds into a
// re-read, so callers always get exactly one profile.
func (s *ProfileService) EnsureProfile(userID uint) (*models.Profile, error) {
	profileRepo := repositories.NewPostgresProfileRepository(s.db)

	profile, err := profileRepo.GetProfileByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = &models.Profile{UserID: userID, Visibility: models.VisibilityPublic}
	if err := profileRepo.CreateProfile(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return profileRepo.GetProfileByUserID(userID)
		}
		return nil, err
	}
	return profile, nil
}

// GetProfile returns the profile of an existing user
func (s *ProfileService) GetProfile(userID uint) (*models.Profile, error) {
	if _, err := repositories.NewPostgresUserRepository(s.db).GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return s.EnsureProfile(userID)
}

// UpdateProfile applies a partial update to the caller's own profile
func (s *ProfileService) UpdateProfile(userID uint, req *models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.EnsureProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Visibility != nil {
		profile.Visibility = *req.Visibility
	}

	if err := repositories.NewPostgresProfileRepository(s.db).UpdateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
