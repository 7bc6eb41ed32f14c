package utils

import (
	"testing"
	"time"

	"github.com/Luismorlan/blogmux/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture helpers shared by DB-backed tests. Each creates one row directly
// through gorm and fails the test on any error.

func TestCreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{
		Id:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestCreateCategory(t *testing.T, db *gorm.DB, slug string, published bool) *model.Category {
	t.Helper()
	category := model.Category{
		Id:          uuid.New().String(),
		Title:       "category " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func TestCreateLocation(t *testing.T, db *gorm.DB, name string) *model.Location {
	t.Helper()
	location := model.Location{
		Id:          uuid.New().String(),
		Name:        name,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&location).Error)
	return &location
}

// TestCreatePost creates a post for author. category may be nil for an
// uncategorized post.
func TestCreatePost(t *testing.T, db *gorm.DB, author *model.User, category *model.Category, pubDate time.Time, published bool) *model.Post {
	t.Helper()
	post := model.Post{
		Id:          uuid.New().String(),
		Title:       "post by " + author.Username,
		Text:        "some text",
		PubDate:     pubDate,
		AuthorID:    author.Id,
		IsPublished: published,
	}
	if category != nil {
		post.CategoryID = &category.Id
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func TestCreateComment(t *testing.T, db *gorm.DB, post *model.Post, author *model.User, text string) *model.Comment {
	t.Helper()
	comment := model.Comment{
		Id:          uuid.New().String(),
		Text:        text,
		PostID:      post.Id,
		AuthorID:    author.Id,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&comment).Error)
	return &comment
}
