package model

import "time"

// User is a registered author. PasswordHash never serializes; the rest of
// the identity is public profile data.
type User struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `json:"-"`

	Posts    []*Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Comments []*Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}
