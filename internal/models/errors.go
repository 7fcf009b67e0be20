package models

import (
	"errors"
)

var (
	ErrItemNotFound      = errors.New("models: item not found")
	ErrCommentNotFound   = errors.New("models: comment not found")
	ErrDuplicateItemName = errors.New("models: duplicate item name")
)
