package blog

import (
	"testing"
	"time"

	"github.com/Luismorlan/blogmux/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestVisible(t *testing.T) {
	now := time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
	publishedCategory := &model.Category{Id: "cat-pub", IsPublished: true}
	hiddenCategory := &model.Category{Id: "cat-hidden", IsPublished: false}

	cases := []struct {
		name    string
		post    model.Post
		visible bool
	}{
		{
			"published uncategorized post",
			model.Post{IsPublished: true, PubDate: now.Add(-time.Hour)},
			true,
		},
		{
			"published post in published category",
			model.Post{IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: strPtr("cat-pub"), Category: publishedCategory},
			true,
		},
		{
			"draft post",
			model.Post{IsPublished: false, PubDate: now.Add(-time.Hour)},
			false,
		},
		{
			"scheduled post",
			model.Post{IsPublished: true, PubDate: now.Add(time.Hour)},
			false,
		},
		{
			"post whose pub date is exactly now",
			model.Post{IsPublished: true, PubDate: now},
			true,
		},
		{
			"published post in hidden category",
			model.Post{IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: strPtr("cat-hidden"), Category: hiddenCategory},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.visible, Visible(&c.post, now))
		})
	}
}

func TestVisibleToAuthorBypass(t *testing.T) {
	now := time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
	draft := model.Post{
		AuthorID:    "author-id",
		IsPublished: false,
		PubDate:     now.Add(time.Hour),
		CategoryID:  strPtr("cat-hidden"),
		Category:    &model.Category{Id: "cat-hidden", IsPublished: false},
	}

	// The author sees their own post even when all three conditions fail.
	assert.True(t, VisibleTo(&draft, "author-id", now))
	assert.False(t, VisibleTo(&draft, "someone-else", now))
	assert.False(t, VisibleTo(&draft, "", now))
}

func TestAuthorize(t *testing.T) {
	assert.Equal(t, Allowed, Authorize("user-1", "user-1"))
	assert.Equal(t, Denied, Authorize("user-2", "user-1"))
	// Anonymous viewers own nothing, not even rows with an empty owner.
	assert.Equal(t, Denied, Authorize("", ""))
}
