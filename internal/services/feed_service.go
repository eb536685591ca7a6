package services

import (
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"gorm.io/gorm"
)

// FeedPageSize is the fixed page size of the personalized feed
const FeedPageSize = 20

// FeedService derives the personalized feed: active posts authored by the
// user or by accounts the user follows, newest first. The follow set is
// re-derived on every call so follow changes are reflected immediately.
type FeedService struct {
	db *gorm.DB
}

// NewFeedService creates a new FeedService
func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// Feed returns one page of the user's feed plus the total matching count
func (s *FeedService) Feed(userID uint, page int) ([]models.Post, int64, error) {
	followingIDs, err := repositories.NewPostgresFollowRepository(s.db).GetFollowingIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	authorIDs := append(followingIDs, userID)

	var total int64
	if err := s.db.Model(&models.Post{}).
		Where("author_id IN ? AND is_active = ?", authorIDs, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var posts []models.Post
	err = s.db.Where("author_id IN ? AND is_active = ?", authorIDs, true).
		Order("created_at DESC").
		Offset((page - 1) * FeedPageSize).
		Limit(FeedPageSize).
		Find(&posts).Error
	return posts, total, err
}
