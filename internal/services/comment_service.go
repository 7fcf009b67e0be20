package services

import (
	"context"

	"xdimension/internal/models"
	"xdimension/internal/repositories"
)

type CommentService struct {
	CommentRepo *repositories.CommentRepository
}

func (s *CommentService) GetCommentsByItemID(ctx context.Context, itemID int) ([]models.Comment, error) {
	return s.CommentRepo.GetCommentsByItemID(ctx, itemID)
}

func (s *CommentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return s.CommentRepo.CreateComment(ctx, comment)
}

// UpdateComment replaces the content after verifying the principal authored
// the comment. Missing and foreign comments are indistinguishable to callers.
func (s *CommentService) UpdateComment(ctx context.Context, id int, principal, content string) (models.Comment, error) {
	existing, err := s.CommentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}
	if !existing.CanModify(principal) {
		return models.Comment{}, models.ErrCommentNotFound
	}

	existing.Content = content
	return s.CommentRepo.UpdateComment(ctx, existing)
}

func (s *CommentService) DeleteComment(ctx context.Context, id int, principal string) (models.Comment, error) {
	existing, err := s.CommentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}
	if !existing.CanModify(principal) {
		return models.Comment{}, models.ErrCommentNotFound
	}
	if err := s.CommentRepo.DeleteComment(ctx, id); err != nil {
		return models.Comment{}, err
	}
	return existing, nil
}
