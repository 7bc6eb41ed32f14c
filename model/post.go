package model

import "time"

/*

Post is a single dated publication.

Id: primary key
CreatedAt: time when the row is created
Title/Text: the publication itself, plain text
PubDate: the advertised publication time, may be in the future for
         scheduled posts; listings order by it descending
AuthorID:
Author: owning user, "belongs-to" relation, rows cascade away with the author
LocationID:
Location: optional place tag, nulled out when the location is deleted
CategoryID:
Category: optional category, nulled out when the category is deleted
ImageKey: media store key of the attached image, empty when none
IsPublished: unset to hide the post from everyone but its author

CommentCount: read-only annotation filled by listing/detail queries, not a
column of its own

*/

type Post struct {
	Id          string     `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Title       string     `gorm:"size:256;not null" json:"title"`
	Text        string     `json:"text"`
	PubDate     time.Time  `gorm:"index" json:"pub_date"`
	AuthorID    string     `gorm:"not null" json:"author_id"`
	Author      *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
	LocationID  *string    `json:"location_id"`
	Location    *Location  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`
	CategoryID  *string    `json:"category_id"`
	Category    *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	ImageKey    string     `json:"image_key"`
	IsPublished bool       `gorm:"default:true" json:"is_published"`
	Comments    []*Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`

	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}
