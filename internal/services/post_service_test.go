package services

import (
	"errors"
	"testing"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
)

func TestCreatePostUpdatesPostsCount(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	svc := NewPostService(db, profiles, NewPropagator(testLogger()), testLogger())

	author := createUser(t, db, "author")

	for i := 0; i < 2; i++ {
		post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{Content: "hello"})
		if err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
		if post.ID == 0 {
			t.Fatal("created post has zero ID")
		}
	}

	if got := profileOf(t, db, author.ID).PostsCount; got != 2 {
		t.Fatalf("posts_count = %d, want 2", got)
	}
}

func TestGetPostHidesInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(db, NewProfileService(db), NewPropagator(testLogger()), testLogger())

	author := createUser(t, db, "author")
	post := createPost(t, db, author, "hello")

	got, err := svc.GetPost(post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != post.ID {
		t.Fatalf("got post %d, want %d", got.ID, post.ID)
	}

	db.Model(&models.Post{}).Where("id = ?", post.ID).Update("is_active", false)
	if _, err := svc.GetPost(post.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get inactive post error = %v, want ErrNotFound", err)
	}
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(db, NewProfileService(db), NewPropagator(testLogger()), testLogger())

	author := createUser(t, db, "author")
	other := createUser(t, db, "other")
	post := createPost(t, db, author, "hello")

	content := "edited"
	if _, err := svc.UpdatePost(other.ID, post.ID, &models.UpdatePostRequest{Content: &content}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("update by non-owner error = %v, want ErrForbidden", err)
	}

	updated, err := svc.UpdatePost(author.ID, post.ID, &models.UpdatePostRequest{Content: &content})
	if err != nil {
		t.Fatalf("update by owner: %v", err)
	}
	if updated.Content != content {
		t.Fatalf("content = %q, want %q", updated.Content, content)
	}
}

func TestListPostsPaginatesActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(db, NewProfileService(db), NewPropagator(testLogger()), testLogger())

	author := createUser(t, db, "author")
	for i := 0; i < 3; i++ {
		createPost(t, db, author, "visible")
	}
	hidden := createPost(t, db, author, "hidden")
	db.Model(&models.Post{}).Where("id = ?", hidden.ID).Update("is_active", false)

	posts, total, err := svc.ListPosts(1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(posts) != 2 {
		t.Fatalf("page size = %d, want 2", len(posts))
	}
}
