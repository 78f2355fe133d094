package cli

import "testing"

func TestSplitCategoryToken(t *testing.T) {
	tests := []struct {
		input    string
		title    string
		category string
	}{
		{"buy groceries @errands", "buy groceries", "errands"},
		{"no token here", "no token here", ""},
		{"email alice@example about @work", "email alice@example about", "work"},
		{"trailing at @", "trailing at @", ""},
		{"mid token @deep work", "mid token @deep work", ""},
		{"@solo", "", "solo"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			title, category := SplitCategoryToken(tt.input)
			if title != tt.title || category != tt.category {
				t.Errorf("SplitCategoryToken(%q) = (%q, %q), want (%q, %q)",
					tt.input, title, category, tt.title, tt.category)
			}
		})
	}
}

func TestFormatFocusedDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{-10, "0m"},
		{59, "0m"},
		{60, "1m"},
		{1500, "25m"},
		{3600, "1h 00m"},
		{3900, "1h 05m"},
		{7320, "2h 02m"},
	}

	for _, tt := range tests {
		if got := FormatFocusedDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatFocusedDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
