package utils

import "testing"

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(date) != "2025-01-10" {
		t.Errorf("FormatDate = %q, want 2025-01-10", FormatDate(date))
	}

	for _, bad := range []string{"", "10-01-2025", "2025/01/10", "2025-13-40"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}
