package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Like records one user's like on a post.
type Like struct {
	UserID uuid.UUID `json:"user"`
}

// Comment is one comment entry on a post, stamped with a snapshot of the
// author's name and avatar at write time.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post is a feed entry. Name and Avatar snapshot the author at creation
// so the feed renders without a join. Likes and comments share the same
// JSONB whole-document write contract as profile entries.
type Post struct {
	ID        uuid.UUID                     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                     `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string                        `gorm:"type:text;not null" json:"text"`
	Name      string                        `gorm:"size:100" json:"name"`
	Avatar    string                        `gorm:"type:text" json:"avatar"`
	Likes     datatypes.JSONSlice[Like]     `gorm:"type:jsonb" json:"likes"`
	Comments  datatypes.JSONSlice[Comment]  `gorm:"type:jsonb" json:"comments"`
	CreatedAt time.Time                     `json:"date"`
	UpdatedAt time.Time                     `json:"-"`
}

// LikedBy reports whether the user already liked the post.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
