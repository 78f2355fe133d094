package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/zenfocus/internal/models"
)

const taskColumns = `id, title, created_at, completed_at, focused_duration, paused, category_id, in_daily_focus, focus_order`

const upsertTaskSQL = `
	INSERT INTO tasks (` + taskColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		completed_at = EXCLUDED.completed_at,
		focused_duration = EXCLUDED.focused_duration,
		paused = EXCLUDED.paused,
		category_id = EXCLUDED.category_id,
		in_daily_focus = EXCLUDED.in_daily_focus,
		focus_order = EXCLUDED.focus_order`

func (s *Store) UpsertTask(task models.Task) error {
	var completedAt sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(upsertTaskSQL,
		task.ID, task.Title, task.CreatedAt.Format(time.RFC3339), completedAt,
		task.FocusedDuration, task.Paused, task.CategoryID, task.InDailyFocus, task.FocusOrder,
	)
	return err
}

func (s *Store) UpsertTasks(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(upsertTaskSQL)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, task := range tasks {
		var completedAt sql.NullString
		if task.CompletedAt != nil {
			completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339), Valid: true}
		}
		if _, err := stmt.Exec(
			task.ID, task.Title, task.CreatedAt.Format(time.RFC3339), completedAt,
			task.FocusedDuration, task.Paused, task.CategoryID, task.InDailyFocus, task.FocusOrder,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (s *Store) GetFocusTasks() ([]models.Task, error) {
	return s.queryTasks(`
		SELECT ` + taskColumns + ` FROM tasks
		WHERE in_daily_focus AND completed_at IS NULL
		ORDER BY focus_order ASC`)
}

func (s *Store) GetAvailableTasks() ([]models.Task, error) {
	return s.queryTasks(`
		SELECT ` + taskColumns + ` FROM tasks
		WHERE NOT in_daily_focus AND completed_at IS NULL
		ORDER BY created_at ASC`)
}

func (s *Store) GetCompletedTasks() ([]models.Task, error) {
	return s.queryTasks(`
		SELECT ` + taskColumns + ` FROM tasks
		WHERE completed_at IS NOT NULL
		ORDER BY completed_at DESC`)
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (s *Store) DeleteCompletedTasks() (int, error) {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE completed_at IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *Store) queryTasks(query string) ([]models.Task, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var createdAt string
	var completedAt, categoryID sql.NullString

	err := row.Scan(
		&t.ID, &t.Title, &createdAt, &completedAt,
		&t.FocusedDuration, &t.Paused, &categoryID, &t.InDailyFocus, &t.FocusOrder,
	)
	if err != nil {
		return models.Task{}, err
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("task %s has invalid created_at %q: %w", t.ID, createdAt, err)
	}
	t.CreatedAt = ts
	if completedAt.Valid {
		ts, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("task %s has invalid completed_at %q: %w", t.ID, completedAt.String, err)
		}
		t.CompletedAt = &ts
	}
	if categoryID.Valid {
		t.CategoryID = categoryID.String
	}

	return t, nil
}
