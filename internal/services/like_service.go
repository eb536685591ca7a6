package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LikeService implements the like/unlike social actions with transactional
// propagation into the post's like_count and the author's notifications.
type LikeService struct {
	db         *gorm.DB
	propagator *Propagator
	logger     *zap.Logger
}

// NewLikeService creates a new LikeService
func NewLikeService(db *gorm.DB, propagator *Propagator, logger *zap.Logger) *LikeService {
	return &LikeService{db: db, propagator: propagator, logger: logger}
}

// Like records that actor likes the post. Liking twice is a no-op and
// never produces a second notification, including under a concurrent
// duplicate insert race.
func (s *LikeService) Like(actorID, postID uint) error {
	actor, post, err := s.loadActorAndPost(actorID, postID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		likeRepo := repositories.NewPostgresLikeRepository(tx)

		liked, err := likeRepo.HasUserLikedPost(actorID, postID)
		if err != nil {
			return err
		}
		if liked {
			return nil
		}

		if err := likeRepo.CreateLike(&models.Like{UserID: actorID, PostID: postID}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against an identical like; the winner
				// already propagated.
				return nil
			}
			return err
		}

		return s.propagator.LikeCreated(tx, actor, post)
	})
}

// Unlike removes actor's like if present. Absence is a no-op.
func (s *LikeService) Unlike(actorID, postID uint) error {
	if _, err := s.activePost(postID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := repositories.NewPostgresLikeRepository(tx).DeleteLike(actorID, postID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return s.propagator.LikeDeleted(tx, postID)
	})
}

// Status reports whether actor currently likes the post
func (s *LikeService) Status(actorID, postID uint) (bool, error) {
	if _, err := s.activePost(postID); err != nil {
		return false, err
	}
	return repositories.NewPostgresLikeRepository(s.db).HasUserLikedPost(actorID, postID)
}

func (s *LikeService) loadActorAndPost(actorID, postID uint) (*models.User, *models.Post, error) {
	actor, err := repositories.NewPostgresUserRepository(s.db).GetUserByID(actorID)
	if err != nil {
		return nil, nil, err
	}
	post, err := s.activePost(postID)
	if err != nil {
		return nil, nil, err
	}
	return actor, post, nil
}

func (s *LikeService) activePost(postID uint) (*models.Post, error) {
	post, err := repositories.NewPostgresPostRepository(s.db).GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if !post.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}
