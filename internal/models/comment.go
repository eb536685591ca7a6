package models

import "time"

// Comment is authored text attached to a post. Comments are soft-deleted
// via IsActive so the author's delete does not break notification history.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	PostID    uint      `json:"post_id" gorm:"index"`
	Content   string    `json:"content" gorm:"size:200"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=200"`
}
