package repositories

import (
	"time"

	"github.com/socialconnect/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetActivePosts(page, limit int) ([]models.Post, int64, error)
	GetAllPosts() ([]models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	CountActiveByAuthor(authorID uint) (int64, error)
	CountPosts() (int64, error)
	CountCreatedSince(t time.Time) (int64, error)
	SetLikeCount(postID uint, count int64) error
	SetCommentCount(postID uint, count int64) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID, active or not
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetActivePosts retrieves active posts newest-first with page/limit pagination
func (r *PostgresPostRepository) GetActivePosts(page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

// GetAllPosts retrieves every post including inactive ones (admin listing)
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// UpdatePost saves post changes
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost hard-deletes a post row
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// CountActiveByAuthor returns the number of active posts authored by a user
func (r *PostgresPostRepository) CountActiveByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("author_id = ? AND is_active = ?", authorID, true).
		Count(&count).Error
	return count, err
}

// CountPosts returns the total number of posts
func (r *PostgresPostRepository) CountPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountCreatedSince returns the number of posts created at or after t
func (r *PostgresPostRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

// SetLikeCount writes a recounted like total for a post
func (r *PostgresPostRepository) SetLikeCount(postID uint, count int64) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).Update("like_count", count).Error
}

// SetCommentCount writes a recounted comment total for a post
func (r *PostgresPostRepository) SetCommentCount(postID uint, count int64) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).Update("comment_count", count).Error
}
