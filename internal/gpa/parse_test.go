package gpa

import "testing"

func TestParseGPA(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"plain value", "3.5", 3.5, true},
		{"padded value", "  3.50  ", 3.5, true},
		{"integer value", "4", 4.0, true},
		{"lower bound", "0.0", 0.0, true},
		{"upper bound", "5.0", 5.0, true},
		{"leading plus", "+3.2", 3.2, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"non-numeric", "bad", 0, false},
		{"embedded units", "3.5 pts", 0, false},
		{"negative", "-0.1", 0, false},
		{"above bound", "5.01", 0, false},
		{"absurdly high", "42", 0, false},
		{"nan", "NaN", 0, false},
		{"infinity", "Inf", 0, false},
		{"negative infinity", "-Inf", 0, false},
		{"comma decimal", "3,5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGPA(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseGPA(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseGPA(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
