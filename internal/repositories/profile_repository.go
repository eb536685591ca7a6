package repositories

import (
	"github.com/socialconnect/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations.
// The Set* methods are the only write path for the denormalized counters;
// they are called by the consistency propagator on a transaction handle.
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByUserID(userID uint) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	SetFollowCounts(userID uint, followers, following int64) error
	SetPostsCount(userID uint, posts int64) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile creates a new profile
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetProfileByUserID retrieves the profile belonging to a user
func (r *PostgresProfileRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves profile attribute changes
func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// SetFollowCounts writes recounted follower/following totals. A missing
// profile row updates nothing and is not an error.
func (r *PostgresProfileRepository) SetFollowCounts(userID uint, followers, following int64) error {
	return r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"followers_count": followers,
			"following_count": following,
		}).Error
}

// SetPostsCount writes a recounted active-post total
func (r *PostgresProfileRepository) SetPostsCount(userID uint, posts int64) error {
	return r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("posts_count", posts).Error
}
