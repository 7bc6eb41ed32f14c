package model

import "time"

// Comment is a reader reply on a post. Threads render chronologically, so
// the natural ordering is created_at ascending. Comments cascade away with
// either their post or their author.
type Comment struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Text        string    `gorm:"not null" json:"text"`
	PostID      string    `gorm:"not null;index" json:"post_id"`
	Post        *Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID    string    `gorm:"not null" json:"author_id"`
	Author      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
}
