package fundwatch

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		label string
		valid bool
	}{
		{"September 2024", true},
		{"January 2024", true},
		{"December 2023", true},
		{"May 1999", true},
		{"Sept 2024", false},        // abbreviated month
		{"september 2024", false},   // wrong case
		{"2024 September", false},   // reversed order
		{"September", false},        // missing year
		{"September 2024 x", false}, // extra token
		{"September  2024", false},  // double space
		{"September 24", false},     // 2-digit year
		{"September 02024", false},  // 5-digit year
		{"Septembre 2024", false},   // not in the month table
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			m, err := ParseMonth(tt.label)
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseMonth(%q) error = %v, want nil", tt.label, err)
				}
				if got := m.String(); got != tt.label {
					t.Errorf("round-trip = %q, want %q", got, tt.label)
				}
			} else {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %v, want error", tt.label, m)
				}
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Errorf("ParseMonth(%q) error = %v, want ErrInvalidPeriod", tt.label, err)
				}
			}
			if got := IsValidMonth(tt.label); got != tt.valid {
				t.Errorf("IsValidMonth(%q) = %v, want %v", tt.label, got, tt.valid)
			}
		})
	}
}

func TestMonthBefore(t *testing.T) {
	// Labels sort alphabetically by month name, Before must not.
	dec23 := NewMonth(2023, time.December)
	jan24 := NewMonth(2024, time.January)
	apr24 := NewMonth(2024, time.April)

	if !dec23.Before(jan24) {
		t.Error("December 2023 should be before January 2024")
	}
	if !jan24.Before(apr24) {
		t.Error("January 2024 should be before April 2024")
	}
	if apr24.Before(jan24) {
		t.Error("April 2024 should not be before January 2024")
	}
	if jan24.Before(jan24) {
		t.Error("a month should not be before itself")
	}
}

func TestMonthJSON(t *testing.T) {
	m := MustParseMonth("September 2024")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"September 2024"` {
		t.Errorf("Marshal() = %s, want %q", data, `"September 2024"`)
	}

	var back Month
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != m {
		t.Errorf("Unmarshal() = %v, want %v", back, m)
	}

	var bad Month
	if err := json.Unmarshal([]byte(`"Sept 2024"`), &bad); err == nil {
		t.Error("Unmarshal of a non-canonical label should fail")
	}
}
