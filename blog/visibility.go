package blog

import (
	"time"

	"github.com/Luismorlan/blogmux/model"
	"gorm.io/gorm"
)

// Visible reports whether a post is publicly visible at the given time:
// the post is published, its pub date has passed, and its category (when
// it has one) is published too. An uncategorized post only needs its own
// flags to hold. Expects Category to be preloaded when CategoryID is set.
func Visible(p *model.Post, now time.Time) bool {
	if !p.IsPublished {
		return false
	}
	if p.PubDate.After(now) {
		return false
	}
	if p.CategoryID != nil && p.Category != nil && !p.Category.IsPublished {
		return false
	}
	return true
}

// VisibleTo is Visible plus the author bypass: authors always see their
// own posts, draft or scheduled.
func VisibleTo(p *model.Post, viewerId string, now time.Time) bool {
	if viewerId != "" && viewerId == p.AuthorID {
		return true
	}
	return Visible(p, now)
}

// visibleScope is the query-shaping form of Visible, applied to listing
// and detail queries so filtering happens in the database.
func visibleScope(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}
