package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/zenfocus/internal/errors"
)

func TestTaskTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"plain title", "write the report", false},
		{"unicode title", "读书 30 分钟", false},
		{"exactly 200 runes", strings.Repeat("я", 200), false},
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"201 runes", strings.Repeat("я", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("TaskTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("TaskTitle(%q) error = %v, want validation error", tt.title, err)
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "Work", false},
		{"internal spaces ok", "Deep Work", false},
		{"exactly 60 runes", strings.Repeat("x", 60), false},
		{"empty", "", true},
		{"leading space", " Work", true},
		{"trailing space", "Work ", true},
		{"61 runes", strings.Repeat("x", 61), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CategoryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("CategoryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
