package models

import "time"

// Task is a single unit of work tracked by the focus board. A task lives in
// exactly one of the two partitions (Today / Someday) until it is completed,
// at which point it belongs to neither.
type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	FocusedDuration int        `json:"focused_duration"` // accumulated focus seconds
	Paused          bool       `json:"paused"`
	CategoryID      string     `json:"category_id,omitempty"`
	InDailyFocus    bool       `json:"in_daily_focus"`
	FocusOrder      int        `json:"focus_order"` // meaningful only while InDailyFocus
}

// Completed reports whether the task has been marked done.
func (t Task) Completed() bool {
	return t.CompletedAt != nil
}
