package repositories

import (
	"github.com/socialconnect/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetActiveByPostID(postID uint) ([]models.Comment, error)
	CountActiveByPostID(postID uint) (int64, error)
	SoftDeleteComment(id uint) error
	DeleteCommentsByPostID(postID uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetActiveByPostID retrieves the active comments for a post, newest first
func (r *PostgresCommentRepository) GetActiveByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ? AND is_active = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CountActiveByPostID retrieves the live count of active comments for a post
func (r *PostgresCommentRepository) CountActiveByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("post_id = ? AND is_active = ?", postID, true).
		Count(&count).Error
	return count, err
}

// SoftDeleteComment deactivates a comment
func (r *PostgresCommentRepository) SoftDeleteComment(id uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).Update("is_active", false).Error
}

// DeleteCommentsByPostID removes every comment referencing a post (post hard delete)
func (r *PostgresCommentRepository) DeleteCommentsByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
