package repositories

import (
	"context"
	"database/sql"
	"time"

	"xdimension/internal/models"
)

type CommentRepository struct {
	DB *sql.DB
}

// GetCommentsByItemID returns comments for the item, newest first.
func (r *CommentRepository) GetCommentsByItemID(ctx context.Context, itemID int) ([]models.Comment, error) {
	query := `
		SELECT id, item_id, user_id, content, created_at, updated_at
		FROM comments
		WHERE item_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) GetCommentByID(ctx context.Context, id int) (models.Comment, error) {
	query := `
		SELECT id, item_id, user_id, content, created_at, updated_at
		FROM comments
		WHERE id = ?
	`
	var c models.Comment
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ItemID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Comment{}, models.ErrCommentNotFound
		}
		return models.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (item_id, user_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, c.ItemID, c.UserID, c.Content, c.CreatedAt)
	if err != nil {
		return models.Comment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (r *CommentRepository) UpdateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	now := time.Now()
	c.UpdatedAt = &now

	query := `
		UPDATE comments
		SET content = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := r.DB.ExecContext(ctx, query, c.Content, c.UpdatedAt, c.ID); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}
