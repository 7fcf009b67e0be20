package models

import "time"

type Comment struct {
	ID        int        `json:"id"`
	ItemID    int        `json:"itemId"`
	UserID    string     `json:"userId"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CanModify reports whether the given principal authored the comment.
func (c Comment) CanModify(principal string) bool {
	return c.UserID == principal
}
