package services

import (
	"errors"
	"time"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminStats is the staff dashboard summary
type AdminStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalPosts  int64 `json:"total_posts"`
	ActiveToday int64 `json:"active_today"`
}

// AdminService implements the staff surface. The staff check itself lives
// in the route middleware; these methods assume an authorized caller.
type AdminService struct {
	db         *gorm.DB
	propagator *Propagator
	logger     *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(db *gorm.DB, propagator *Propagator, logger *zap.Logger) *AdminService {
	return &AdminService{db: db, propagator: propagator, logger: logger}
}

// ListUsers returns all accounts ordered by ID
func (s *AdminService) ListUsers() ([]models.User, error) {
	return repositories.NewPostgresUserRepository(s.db).GetUsers()
}

// DeactivateUser flips an account to inactive
func (s *AdminService) DeactivateUser(userID uint) error {
	userRepo := repositories.NewPostgresUserRepository(s.db)
	user, err := userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	user.IsActive = false
	return userRepo.UpdateUser(user)
}

// ListPosts returns every post including inactive ones
func (s *AdminService) ListPosts() ([]models.Post, error) {
	return repositories.NewPostgresPostRepository(s.db).GetAllPosts()
}

// DeletePost hard-deletes a post together with its likes, comments and
// notifications, then recounts the author's posts_count. All in one
// transaction.
func (s *AdminService) DeletePost(postID uint) error {
	post, err := repositories.NewPostgresPostRepository(s.db).GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresLikeRepository(tx).DeleteLikesByPostID(postID); err != nil {
			return err
		}
		if err := repositories.NewPostgresCommentRepository(tx).DeleteCommentsByPostID(postID); err != nil {
			return err
		}
		if err := repositories.NewPostgresNotificationRepository(tx).DeleteByPostID(postID); err != nil {
			return err
		}
		if err := repositories.NewPostgresPostRepository(tx).DeletePost(postID); err != nil {
			return err
		}
		return s.propagator.PostDeleted(tx, post.AuthorID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted by staff", zap.Uint("post_id", postID), zap.Uint("author_id", post.AuthorID))
	return nil
}

// Stats returns the dashboard counters
func (s *AdminService) Stats() (*AdminStats, error) {
	userRepo := repositories.NewPostgresUserRepository(s.db)
	postRepo := repositories.NewPostgresPostRepository(s.db)

	totalUsers, err := userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	totalPosts, err := postRepo.CountPosts()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	activeToday, err := postRepo.CountCreatedSince(dayStart)
	if err != nil {
		return nil, err
	}

	return &AdminStats{TotalUsers: totalUsers, TotalPosts: totalPosts, ActiveToday: activeToday}, nil
}
