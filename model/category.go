package model

import (
	"regexp"
	"time"
)

// slug is what appears in the category URL, restrict it to URL-safe runes.
var slugRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Category groups posts under a unique URL slug. An unpublished category
// hides every post filed under it from non-author viewers.
type Category struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"size:256;not null" json:"title"`
	Description string    `json:"description"`
	Slug        string    `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`

	Posts []*Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"posts,omitempty"`
}

// IsValidSlug reports whether s contains only letters, digits, hyphen and
// underscore.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}
