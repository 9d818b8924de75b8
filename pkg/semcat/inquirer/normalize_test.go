package inquirer

import "testing"

func TestStripSense(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"about#1", "about"},
		{"about#2", "about"},
		{"word#12", "word"},
		{"plain", "plain"},
		{"#3", ""},
		{"trailing#", "trailing#"},
		{"mid#dle", "mid#dle"},
		{"a#1b", "a#1b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripSense(tt.in); got != tt.want {
			t.Errorf("StripSense(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
