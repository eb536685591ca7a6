package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/socialconnect/backend/internal/models"
)

func TestFeedShowsFollowedAndOwnActivePosts(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db)
	follows := NewFollowService(db, profiles, NewPropagator(testLogger()), testLogger())
	feed := NewFeedService(db)

	reader := createUser(t, db, "reader")
	friendA := createUser(t, db, "friend_a")
	friendB := createUser(t, db, "friend_b")
	stranger := createUser(t, db, "stranger")

	if err := follows.Follow(reader.ID, friendA.ID); err != nil {
		t.Fatalf("follow a: %v", err)
	}
	if err := follows.Follow(reader.ID, friendB.ID); err != nil {
		t.Fatalf("follow b: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	stampAt := func(p *models.Post, offset time.Duration) {
		db.Model(&models.Post{}).Where("id = ?", p.ID).Update("created_at", base.Add(offset))
	}

	own := createPost(t, db, reader, "own post")
	stampAt(own, 1*time.Minute)
	fromA := createPost(t, db, friendA, "from a")
	stampAt(fromA, 2*time.Minute)
	fromB := createPost(t, db, friendB, "from b")
	stampAt(fromB, 3*time.Minute)

	hiddenA := createPost(t, db, friendA, "hidden")
	db.Model(&models.Post{}).Where("id = ?", hiddenA.ID).Update("is_active", false)
	createPost(t, db, stranger, "unrelated")

	posts, total, err := feed.Feed(reader.ID, 1)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	wantOrder := []uint{fromB.ID, fromA.ID, own.ID}
	if len(posts) != len(wantOrder) {
		t.Fatalf("feed size = %d, want %d", len(posts), len(wantOrder))
	}
	for i, want := range wantOrder {
		if posts[i].ID != want {
			t.Fatalf("feed[%d] = post %d, want %d", i, posts[i].ID, want)
		}
	}
}

func TestFeedPaginatesAtTwenty(t *testing.T) {
	db := setupTestDB(t)
	feed := NewFeedService(db)

	author := createUser(t, db, "author")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < FeedPageSize+5; i++ {
		p := createPost(t, db, author, fmt.Sprintf("post %d", i))
		db.Model(&models.Post{}).Where("id = ?", p.ID).Update("created_at", base.Add(time.Duration(i)*time.Second))
	}

	page1, total, err := feed.Feed(author.ID, 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != int64(FeedPageSize+5) {
		t.Fatalf("total = %d, want %d", total, FeedPageSize+5)
	}
	if len(page1) != FeedPageSize {
		t.Fatalf("page 1 size = %d, want %d", len(page1), FeedPageSize)
	}

	page2, _, err := feed.Feed(author.ID, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("page 2 size = %d, want 5", len(page2))
	}
	if page1[0].Content != fmt.Sprintf("post %d", FeedPageSize+4) {
		t.Fatalf("newest post = %q, want %q", page1[0].Content, fmt.Sprintf("post %d", FeedPageSize+4))
	}
}

func TestFeedWithNoFollowsShowsOnlyOwnPosts(t *testing.T) {
	db := setupTestDB(t)
	feed := NewFeedService(db)

	loner := createUser(t, db, "loner")
	other := createUser(t, db, "other")
	createPost(t, db, loner, "mine")
	createPost(t, db, other, "theirs")

	posts, total, err := feed.Feed(loner.ID, 1)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("feed = %d posts, total %d, want 1/1", len(posts), total)
	}
	if posts[0].Content != "mine" {
		t.Fatalf("feed[0] = %q, want %q", posts[0].Content, "mine")
	}
}
