package models

import "time"

// Category is a user-defined label attachable to tasks. Categories form a
// strict tree: every category has at most one parent, and root categories
// have an empty ParentID.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"` // display attribute, opaque hex string
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
