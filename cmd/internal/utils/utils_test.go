package utils

import (
	"testing"
	"time"
)

func TestParseClinicTime(t *testing.T) {
	loc := time.UTC
	want := time.Date(2025, 11, 1, 10, 0, 0, 0, loc)

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2025-11-01 10:00", false},
		{"2025-11-01T10:00", false},
		{"  2025-11-01 10:00 ", false},
		{"2025-11-01", true},
		{"tomorrow", true},
		{"", true},
	}

	for _, tt := range tests {
		got, err := ParseClinicTime(tt.in, loc)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClinicTime(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClinicTime(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseClinicTime(%q) = %v, want %v", tt.in, got, want)
		}
	}
}

func TestFormatEpoch(t *testing.T) {
	millis := time.Date(2025, 11, 1, 10, 0, 0, 123e6, time.UTC).UnixMilli()
	if got := FormatEpoch(millis); got != "2025-11-01T10:00:00.123Z" {
		t.Errorf("FormatEpoch() = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	type req struct {
		Name  string
		Tags  []string
		Count int
		Raw   string `sanitize:"-"`
	}
	r := &req{Name: "  Alice ", Tags: []string{" a", "b "}, Count: 2, Raw: " kept "}
	Sanitize(r)

	if r.Raw != " kept " {
		t.Errorf("Raw = %q, want untouched", r.Raw)
	}

	if r.Name != "Alice" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Tags[0] != "a" || r.Tags[1] != "b" {
		t.Errorf("Tags = %q", r.Tags)
	}
}
