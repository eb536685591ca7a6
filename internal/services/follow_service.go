package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FollowService implements the follow/unfollow social actions. Each
// mutating action runs the edge write and the counter/notification
// propagation in a single transaction.
type FollowService struct {
	db         *gorm.DB
	profiles   *ProfileService
	propagator *Propagator
	logger     *zap.Logger
}

// NewFollowService creates a new FollowService
func NewFollowService(db *gorm.DB, profiles *ProfileService, propagator *Propagator, logger *zap.Logger) *FollowService {
	return &FollowService{db: db, profiles: profiles, propagator: propagator, logger: logger}
}

// Follow creates the (actor, target) edge. Following a user twice is a
// no-op with identical end state, including under a concurrent duplicate
// insert race.
func (s *FollowService) Follow(actorID, targetID uint) error {
	if actorID == targetID {
		return apperrors.NewValidation("target", "cannot follow yourself")
	}

	userRepo := repositories.NewPostgresUserRepository(s.db)
	actor, err := userRepo.GetUserByID(actorID)
	if err != nil {
		return err
	}
	if _, err := userRepo.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	// Both ends need a profile row before counters can land on it.
	if _, err := s.profiles.EnsureProfile(actorID); err != nil {
		return err
	}
	if _, err := s.profiles.EnsureProfile(targetID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		followRepo := repositories.NewPostgresFollowRepository(tx)

		following, err := followRepo.IsFollowing(actorID, targetID)
		if err != nil {
			return err
		}
		if following {
			return nil
		}

		follow := &models.Follow{FollowerID: actorID, FollowingID: targetID}
		if err := followRepo.CreateFollow(follow); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against an identical follow; the winner
				// already propagated.
				return nil
			}
			return err
		}

		return s.propagator.FollowCreated(tx, actor, targetID)
	})
}

// Unfollow removes the (actor, target) edge if present. Absence is a
// no-op, not an error.
func (s *FollowService) Unfollow(actorID, targetID uint) error {
	if _, err := repositories.NewPostgresUserRepository(s.db).GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := repositories.NewPostgresFollowRepository(tx).DeleteFollow(actorID, targetID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return s.propagator.FollowDeleted(tx, actorID, targetID)
	})
}

// Followers lists the users following userID, newest edge first
func (s *FollowService) Followers(userID uint) ([]models.UserCompact, error) {
	return s.edgeListing(userID, repositories.NewPostgresFollowRepository(s.db).GetFollowers)
}

// Following lists the users userID follows, newest edge first
func (s *FollowService) Following(userID uint) ([]models.UserCompact, error) {
	return s.edgeListing(userID, repositories.NewPostgresFollowRepository(s.db).GetFollowing)
}

func (s *FollowService) edgeListing(userID uint, list func(uint) ([]models.User, error)) ([]models.UserCompact, error) {
	if _, err := repositories.NewPostgresUserRepository(s.db).GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	users, err := list(userID)
	if err != nil {
		return nil, err
	}
	compact := make([]models.UserCompact, len(users))
	for i, u := range users {
		compact[i] = u.ToCompact()
	}
	return compact, nil
}
