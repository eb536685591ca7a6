package services

import (
	"path/filepath"
	"testing"

	"github.com/socialconnect/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "socialconnect_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		AuthorID: author.ID,
		Content:  content,
		Category: models.CategoryGeneral,
		IsActive: true,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func profileOf(t *testing.T, db *gorm.DB, userID uint) *models.Profile {
	t.Helper()

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("load profile of user %d: %v", userID, err)
	}
	return &profile
}

func postByID(t *testing.T, db *gorm.DB, postID uint) *models.Post {
	t.Helper()

	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		t.Fatalf("load post %d: %v", postID, err)
	}
	return &post
}

func notificationsFor(t *testing.T, db *gorm.DB, recipientID uint) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	if err := db.Where("recipient_id = ?", recipientID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications of user %d: %v", recipientID, err)
	}
	return notifications
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
