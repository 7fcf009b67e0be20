package models

import "time"

// SourceAPI and SourceUser discriminate upstream-imported items from
// user-created ones.
const (
	SourceAPI  = "api"
	SourceUser = "user"
)

// PlaceholderImageURL is stored when an item is created without an image.
const PlaceholderImageURL = "/api/placeholder/400/300"

type GameItem struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Power         string     `json:"power"`
	Effect        string     `json:"effect"`
	Rarity        string     `json:"rarity"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	UserID        string     `json:"userId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	FileName      *string    `json:"fileName,omitempty"`
	IsUserCreated bool       `json:"isUserCreated"`
	UploaderID    *string    `json:"uploaderId,omitempty"`
	Source        string     `json:"source"`
}

// CanMutate reports whether the given principal may update or delete the item.
// API-sourced items are read-only for everyone.
func (i GameItem) CanMutate(principal string) bool {
	if i.Source != SourceUser {
		return false
	}
	return i.UploaderID != nil && *i.UploaderID == principal
}
