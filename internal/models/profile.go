package models

import "time"

// Profile visibility levels
const (
	VisibilityPublic        = "public"
	VisibilityPrivate       = "private"
	VisibilityFollowersOnly = "followers_only"
)

// Profile is the one-to-one extension of a User. The three counters are
// denormalized aggregates owned by the consistency propagator; nothing else
// writes them.
type Profile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex"`
	Bio            string    `json:"bio" gorm:"size:160"`
	AvatarURL      string    `json:"avatar_url"`
	Website        string    `json:"website"`
	Location       string    `json:"location" gorm:"size:100"`
	Visibility     string    `json:"visibility" gorm:"size:20;default:'public'"`
	FollowersCount uint      `json:"followers_count" gorm:"default:0"`
	FollowingCount uint      `json:"following_count" gorm:"default:0"`
	PostsCount     uint      `json:"posts_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the request body for updating the own profile
type UpdateProfileRequest struct {
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=160"`
	AvatarURL  *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Website    *string `json:"website,omitempty" validate:"omitempty,url"`
	Location   *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Visibility *string `json:"visibility,omitempty" validate:"omitempty,oneof=public private followers_only"`
}
