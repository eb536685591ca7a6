package services

import (
	"fmt"

	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Propagator keeps the denormalized counters consistent with the underlying
// relationship/activity tables and fans out notification records for social
// actions. It is the only writer of followers_count, following_count,
// posts_count, like_count and comment_count, and the only creator of
// Notification rows.
//
// Every method takes the transaction handle of the triggering write, so the
// primary row, the counter refresh and the notification commit or roll back
// together.
//
// All counters are recomputed from the authoritative rows rather than
// incremented. The recount is more expensive than an increment but
// self-corrects any drift, and flooring at zero is automatic.
type Propagator struct {
	logger *zap.Logger
}

// NewPropagator creates a new Propagator
func NewPropagator(logger *zap.Logger) *Propagator {
	return &Propagator{logger: logger}
}

// FollowCreated refreshes both profiles' follow counters and notifies the
// followed user. Self-follows never reach this point, but the suppression
// guard stays: a notification is never sent to its own sender.
func (p *Propagator) FollowCreated(tx *gorm.DB, follower *models.User, followingID uint) error {
	if err := p.refreshFollowCounts(tx, follower.ID, followingID); err != nil {
		return err
	}

	if follower.ID == followingID {
		return nil
	}

	notification := &models.Notification{
		RecipientID: followingID,
		SenderID:    follower.ID,
		Type:        models.NotificationTypeFollow,
		Message:     fmt.Sprintf("%s started following you", follower.Username),
	}
	if err := repositories.NewPostgresNotificationRepository(tx).CreateNotification(notification); err != nil {
		return err
	}

	p.logger.Debug("follow propagated",
		zap.Uint("follower_id", follower.ID),
		zap.Uint("following_id", followingID))
	return nil
}

// FollowDeleted refreshes both profiles' follow counters. No notification
// is produced for unfollow.
func (p *Propagator) FollowDeleted(tx *gorm.DB, followerID, followingID uint) error {
	return p.refreshFollowCounts(tx, followerID, followingID)
}

// LikeCreated recounts the post's likes and notifies the post author,
// unless the liker is the author.
func (p *Propagator) LikeCreated(tx *gorm.DB, liker *models.User, post *models.Post) error {
	if err := p.refreshLikeCount(tx, post.ID); err != nil {
		return err
	}

	if liker.ID == post.AuthorID {
		return nil
	}

	postID := post.ID
	notification := &models.Notification{
		RecipientID: post.AuthorID,
		SenderID:    liker.ID,
		Type:        models.NotificationTypeLike,
		PostID:      &postID,
		Message:     fmt.Sprintf("%s liked your post", liker.Username),
	}
	if err := repositories.NewPostgresNotificationRepository(tx).CreateNotification(notification); err != nil {
		return err
	}

	p.logger.Debug("like propagated",
		zap.Uint("user_id", liker.ID),
		zap.Uint("post_id", post.ID))
	return nil
}

// LikeDeleted recounts the post's likes. No notification for unlike.
func (p *Propagator) LikeDeleted(tx *gorm.DB, postID uint) error {
	return p.refreshLikeCount(tx, postID)
}

// CommentCreated recounts the post's active comments and notifies the post
// author, unless the commenter is the author.
func (p *Propagator) CommentCreated(tx *gorm.DB, commenter *models.User, post *models.Post) error {
	if err := p.refreshCommentCount(tx, post.ID); err != nil {
		return err
	}

	if commenter.ID == post.AuthorID {
		return nil
	}

	postID := post.ID
	notification := &models.Notification{
		RecipientID: post.AuthorID,
		SenderID:    commenter.ID,
		Type:        models.NotificationTypeComment,
		PostID:      &postID,
		Message:     fmt.Sprintf("%s commented on your post", commenter.Username),
	}
	if err := repositories.NewPostgresNotificationRepository(tx).CreateNotification(notification); err != nil {
		return err
	}

	p.logger.Debug("comment propagated",
		zap.Uint("user_id", commenter.ID),
		zap.Uint("post_id", post.ID))
	return nil
}

// CommentDeleted recounts the post's active comments after a soft delete.
func (p *Propagator) CommentDeleted(tx *gorm.DB, postID uint) error {
	return p.refreshCommentCount(tx, postID)
}

// PostCreated refreshes the author's posts_count. No notification.
func (p *Propagator) PostCreated(tx *gorm.DB, authorID uint) error {
	return p.refreshPostsCount(tx, authorID)
}

// PostDeleted refreshes the author's posts_count after a hard delete.
func (p *Propagator) PostDeleted(tx *gorm.DB, authorID uint) error {
	return p.refreshPostsCount(tx, authorID)
}

// refreshFollowCounts recounts followers/following for both ends of a
// follow edge. A user without a profile row simply gets no update; profiles
// are created lazily and the next EnsureProfile heals the gap.
func (p *Propagator) refreshFollowCounts(tx *gorm.DB, followerID, followingID uint) error {
	followRepo := repositories.NewPostgresFollowRepository(tx)
	profileRepo := repositories.NewPostgresProfileRepository(tx)

	for _, userID := range []uint{followerID, followingID} {
		followers, err := followRepo.GetFollowersCount(userID)
		if err != nil {
			return err
		}
		following, err := followRepo.GetFollowingCount(userID)
		if err != nil {
			return err
		}
		if err := profileRepo.SetFollowCounts(userID, followers, following); err != nil {
			return err
		}
	}
	return nil
}

func (p *Propagator) refreshLikeCount(tx *gorm.DB, postID uint) error {
	count, err := repositories.NewPostgresLikeRepository(tx).GetLikesCountByPostID(postID)
	if err != nil {
		return err
	}
	return repositories.NewPostgresPostRepository(tx).SetLikeCount(postID, count)
}

func (p *Propagator) refreshCommentCount(tx *gorm.DB, postID uint) error {
	count, err := repositories.NewPostgresCommentRepository(tx).CountActiveByPostID(postID)
	if err != nil {
		return err
	}
	return repositories.NewPostgresPostRepository(tx).SetCommentCount(postID, count)
}

func (p *Propagator) refreshPostsCount(tx *gorm.DB, authorID uint) error {
	count, err := repositories.NewPostgresPostRepository(tx).CountActiveByAuthor(authorID)
	if err != nil {
		return err
	}
	return repositories.NewPostgresProfileRepository(tx).SetPostsCount(authorID, count)
}
