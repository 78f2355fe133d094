package storage

import (
	"github.com/julianstephens/zenfocus/internal/models"
)

// Provider is the persistence contract for the focus coordinator. Task
// fetches come in exactly the three shapes the coordinator needs: focus
// tasks ordered by focus_order, available tasks ordered by created_at, and
// completed tasks ordered by completion time.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	UpsertTask(models.Task) error
	UpsertTasks([]models.Task) error
	GetTask(id string) (models.Task, error)
	GetFocusTasks() ([]models.Task, error)
	GetAvailableTasks() ([]models.Task, error)
	GetCompletedTasks() ([]models.Task, error)
	DeleteTask(id string) error
	DeleteCompletedTasks() (int, error)

	// Categories
	UpsertCategory(models.Category) error
	GetCategory(id string) (models.Category, error)
	GetAllCategories() ([]models.Category, error)
	DeleteCategory(id string) error

	// Config key-value store
	GetConfigValue(key string) (string, error)
	SetConfigValue(key, value string) error

	// Utils
	GetConfigPath() string
}
