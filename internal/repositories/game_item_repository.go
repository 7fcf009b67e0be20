package repositories

import (
	"context"
	"database/sql"
	"time"

	"xdimension/internal/models"
)

type GameItemRepository struct {
	DB *sql.DB
}

// GetItemsByUploader returns user-created items owned by the uploader ordered by creation time.
func (r *GameItemRepository) GetItemsByUploader(ctx context.Context, uploaderID string) ([]models.GameItem, error) {
	query := `
		SELECT id, name, category, type, power, effect, rarity, description, image_url,
		       user_id, created_at, updated_at, file_name, is_user_created, uploader_id, source
		FROM game_items
		WHERE source = 'user' AND uploader_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, uploaderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.GameItem{}
	for rows.Next() {
		item, err := scanGameItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *GameItemRepository) GetItemByID(ctx context.Context, id int) (models.GameItem, error) {
	query := `
		SELECT id, name, category, type, power, effect, rarity, description, image_url,
		       user_id, created_at, updated_at, file_name, is_user_created, uploader_id, source
		FROM game_items
		WHERE id = ?
	`
	item, err := scanGameItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GameItem{}, models.ErrItemNotFound
		}
		return models.GameItem{}, err
	}
	return item, nil
}

func (r *GameItemRepository) CreateItem(ctx context.Context, item models.GameItem) (models.GameItem, error) {
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO game_items (name, category, type, power, effect, rarity, description, image_url,
		                        user_id, created_at, file_name, is_user_created, uploader_id, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Category, item.Type, item.Power, item.Effect, item.Rarity,
		item.Description, item.ImageURL, item.UserID, item.CreatedAt,
		item.FileName, item.IsUserCreated, item.UploaderID, item.Source,
	)
	if err != nil {
		return models.GameItem{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.GameItem{}, err
	}
	item.ID = int(id)
	return item, nil
}

func (r *GameItemRepository) UpdateItem(ctx context.Context, item models.GameItem) (models.GameItem, error) {
	now := time.Now()
	item.UpdatedAt = &now

	query := `
		UPDATE game_items
		SET name = ?, category = ?, type = ?, power = ?, effect = ?, rarity = ?,
		    description = ?, image_url = ?, file_name = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Category, item.Type, item.Power, item.Effect, item.Rarity,
		item.Description, item.ImageURL, item.FileName, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return models.GameItem{}, err
	}
	return item, nil
}

// DeleteItemWithComments removes the item and every comment referencing it in
// a single transaction, so a failure leaves both row sets untouched.
func (r *GameItemRepository) DeleteItemWithComments(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE item_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM game_items WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGameItem(row rowScanner) (models.GameItem, error) {
	var item models.GameItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Type, &item.Power, &item.Effect,
		&item.Rarity, &item.Description, &item.ImageURL, &item.UserID,
		&item.CreatedAt, &item.UpdatedAt, &item.FileName,
		&item.IsUserCreated, &item.UploaderID, &item.Source,
	)
	return item, err
}
