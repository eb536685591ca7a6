package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentService implements comment creation, listing and the owner's soft
// delete. Unlike likes and follows, creating a comment is not idempotent:
// every call produces a distinct row and propagates unconditionally.
type CommentService struct {
	db         *gorm.DB
	propagator *Propagator
	logger     *zap.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(db *gorm.DB, propagator *Propagator, logger *zap.Logger) *CommentService {
	return &CommentService{db: db, propagator: propagator, logger: logger}
}

// CreateComment attaches a new comment to an active post and propagates
// the comment_count recount and author notification in one transaction.
func (s *CommentService) CreateComment(actorID, postID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	actor, err := repositories.NewPostgresUserRepository(s.db).GetUserByID(actorID)
	if err != nil {
		return nil, err
	}

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

	comment := &models.Comment{
		AuthorID: actorID,
		PostID:   postID,
		Content:  req.Content,
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresCommentRepository(tx).CreateComment(comment); err != nil {
			return err
		}
		return s.propagator.CommentCreated(tx, actor, post)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the active comments of an active post, newest first
func (s *CommentService) ListComments(postID uint) ([]models.Comment, error) {
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
	return repositories.NewPostgresCommentRepository(s.db).GetActiveByPostID(postID)
}

// DeleteComment soft-deletes the actor's own comment and recounts the
// post's comment_count. Deleting someone else's comment is forbidden.
func (s *CommentService) DeleteComment(actorID, commentID uint) error {
	comment, err := repositories.NewPostgresCommentRepository(s.db).GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if !comment.IsActive {
		return apperrors.ErrNotFound
	}
	if comment.AuthorID != actorID {
		return apperrors.ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresCommentRepository(tx).SoftDeleteComment(commentID); err != nil {
			return err
		}
		return s.propagator.CommentDeleted(tx, comment.PostID)
	})
}
