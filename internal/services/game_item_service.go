package services

import (
	"context"

	"xdimension/internal/models"
	"xdimension/internal/repositories"
)

type GameItemService struct {
	ItemRepo *repositories.GameItemRepository
}

func (s *GameItemService) GetItemsByUploader(ctx context.Context, uploaderID string) ([]models.GameItem, error) {
	return s.ItemRepo.GetItemsByUploader(ctx, uploaderID)
}

// GetItemForUploader returns the item only when the principal owns it.
// A foreign or api-sourced item is reported as not found, the same as a
// missing row, so callers cannot probe for existence.
func (s *GameItemService) GetItemForUploader(ctx context.Context, id int, principal string) (models.GameItem, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.GameItem{}, err
	}
	if !item.CanMutate(principal) {
		return models.GameItem{}, models.ErrItemNotFound
	}
	return item, nil
}

func (s *GameItemService) CreateItem(ctx context.Context, item models.GameItem) (models.GameItem, error) {
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *GameItemService) UpdateItem(ctx context.Context, id int, principal string, item models.GameItem) (models.GameItem, error) {
	existing, err := s.GetItemForUploader(ctx, id, principal)
	if err != nil {
		return models.GameItem{}, err
	}

	item.ID = existing.ID
	item.UserID = existing.UserID
	if item.FileName == nil {
		item.FileName = existing.FileName
	}
	item.CreatedAt = existing.CreatedAt
	item.IsUserCreated = existing.IsUserCreated
	item.UploaderID = existing.UploaderID
	item.Source = existing.Source
	return s.ItemRepo.UpdateItem(ctx, item)
}

// DeleteItem removes the owned item together with its comments and returns
// the deleted row.
func (s *GameItemService) DeleteItem(ctx context.Context, id int, principal string) (models.GameItem, error) {
	existing, err := s.GetItemForUploader(ctx, id, principal)
	if err != nil {
		return models.GameItem{}, err
	}
	if err := s.ItemRepo.DeleteItemWithComments(ctx, id); err != nil {
		return models.GameItem{}, err
	}
	return existing, nil
}
