package booking

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:30", "09:30:00"},
		{"09:30:15", "09:30:15"},
		{"", ""},
		{"9:30", "9:30"},
	}
	for _, tt := range tests {
		if got := NormalizeTime(tt.in); got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:30:00", true},
		{"23:59:59", true},
		{"24:00:00", false},
		{"09:30", false},
		{"9h30", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidTime(tt.in); got != tt.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-02-30", false},
		{"15/01/2024", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidDate(tt.in); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
