package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/errors"
)

// TaskTitle validates a task title before any state mutation.
func TaskTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.Validation("task title", "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > constants.MaxTaskTitleLen {
		return errors.Validation("task title", "must be at most 200 characters")
	}
	return nil
}

// CategoryName validates a category name before any state mutation.
func CategoryName(name string) error {
	if name == "" {
		return errors.Validation("category name", "must not be empty")
	}
	if name != strings.TrimSpace(name) {
		return errors.Validation("category name", "must not have leading or trailing whitespace")
	}
	if utf8.RuneCountInString(name) > constants.MaxCategoryNameLen {
		return errors.Validation("category name", "must be at most 60 characters")
	}
	return nil
}
