package flight

import "testing"

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT2H15M", 135},
		{"PT45M", 45},
		{"PT3H", 180},
		{"PT0H0M", 0},
		{"PT10H5M", 605},
		{"", 0},
		{"garbage", 0},
		{"PT", 0},
		{"PTxH", 0},
		{"PT2HxM", 0},
		{"2H15M", 0},
	}

	for _, tt := range tests {
		if got := ParseDurationMinutes(tt.input); got != tt.want {
			t.Errorf("ParseDurationMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatDurationLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h"},
		{135, "2h 15m"},
		{180, "3h"},
		{605, "10h 5m"},
	}

	for _, tt := range tests {
		if got := FormatDurationLabel(tt.minutes); got != tt.want {
			t.Errorf("FormatDurationLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
