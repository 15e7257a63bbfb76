package models

import "gorm.io/gorm"

// ForumPost is a community discussion entry. Authors can post
// anonymously; the author id is still stored for moderation but is
// never serialized on anonymous posts.
type ForumPost struct {
	gorm.Model
	AuthorID    uint   `gorm:"index;not null"`
	Title       string `gorm:"size:200"`
	Body        string `gorm:"type:text;not null"`
	IsAnonymous bool   `gorm:"default:false"`
	Closed      bool   `gorm:"default:false"`

	Comments []ForumComment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type ForumComment struct {
	gorm.Model
	PostID   uint   `gorm:"index;not null"`
	AuthorID uint   `gorm:"index"`
	Body     string `gorm:"type:text;not null"`
}

// ContentReport flags a post or comment for moderator review.
type ContentReport struct {
	gorm.Model
	ContentType string `gorm:"size:20"` // "post" | "comment"
	ContentID   uint   `gorm:"index"`
	ReporterID  uint   `gorm:"index"`
	Reason      string `gorm:"size:255"`
	Status      string `gorm:"size:32;default:open"` // "open" | "resolved"
}
