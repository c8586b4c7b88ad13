package models

import "time"

// Comment author kinds.
const (
	CommentAuthorCustomer = "customer"
	CommentAuthorAdmin    = "admin"
)

// Comment moderation states.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// ReviewComment is a top-level comment on a review, or a reply when ParentID
// is set. The thread depth is capped at two levels by the write path.
type ReviewComment struct {
	ID       uint  `gorm:"primaryKey"`
	ReviewID uint  `gorm:"index;not null"`
	ParentID *uint `gorm:"index"`

	CustomerID *uint `gorm:"index"`
	AuthorType string `gorm:"size:10;not null"`

	Content string `gorm:"type:text;not null"`
	Status  string `gorm:"size:20;default:approved;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReviewComment) TableName() string { return "review_comments" }
