package postgres

import (
	"database/sql"
	"time"

	"github.com/julianstephens/zenfocus/internal/models"
)

func (s *Store) UpsertCategory(cat models.Category) error {
	var parentID sql.NullString
	if cat.ParentID != "" {
		parentID = sql.NullString{String: cat.ParentID, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO categories (id, name, color, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			color = EXCLUDED.color,
			parent_id = EXCLUDED.parent_id`,
		cat.ID, cat.Name, cat.Color, parentID, cat.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetCategory(id string) (models.Category, error) {
	row := s.db.QueryRow(`SELECT id, name, color, parent_id, created_at FROM categories WHERE id = $1`, id)
	return scanCategory(row)
}

func (s *Store) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, color, parent_id, created_at FROM categories ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}

	return cats, rows.Err()
}

func (s *Store) DeleteCategory(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	// Tasks referencing the category fall back to uncategorized
	if _, err := tx.Exec(`UPDATE tasks SET category_id = NULL WHERE category_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	var createdAt string
	var parentID sql.NullString

	if err := row.Scan(&c.ID, &c.Name, &c.Color, &parentID, &createdAt); err != nil {
		return models.Category{}, err
	}

	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		c.CreatedAt = ts
	}
	if parentID.Valid {
		c.ParentID = parentID.String
	}

	return c, nil
}
