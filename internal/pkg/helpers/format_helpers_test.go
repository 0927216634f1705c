package helpers

import (
	"testing"
	"time"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹ 0"},
		{"under a thousand", 500, "₹500"},
		{"thousands", 25000, "₹25,000"},
		{"lakh grouping", 1234567, "₹12,34,567"},
		{"crore grouping", 123456789, "₹12,34,56,789"},
		{"exact lakh", 100000, "₹1,00,000"},
		{"with paise", 1234.5, "₹1,234.50"},
		{"paise rounding", 99.999, "₹100"},
		{"negative", -25000, "-₹25,000"},
		{"negative with paise", -1234.56, "-₹1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate(time.Time{}); got != "N/A" {
		t.Errorf("zero time should render N/A, got %q", got)
	}

	d := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	if got := FormatDisplayDate(d); got != "05-03-2024" {
		t.Errorf("expected 05-03-2024, got %q", got)
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		size      int
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first page", 1, 8, 20, 0, 8},
		{"middle page", 2, 8, 20, 8, 16},
		{"last partial page", 3, 8, 20, 16, 20},
		{"page past end clamps to last", 9, 8, 20, 16, 20},
		{"empty list", 1, 8, 0, 0, 0},
		{"zero page treated as first", 0, 8, 20, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateSliceIndices(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(17, 2, 8)
	if info.TotalPages != 3 || info.CurrentPage != 2 || info.TotalItems != 17 {
		t.Errorf("unexpected pagination info: %+v", info)
	}

	// Page beyond the end clamps to the last page.
	info = NewPaginationInfo(17, 9, 8)
	if info.CurrentPage != 3 {
		t.Errorf("expected clamped page 3, got %d", info.CurrentPage)
	}

	// An empty listing still has one page to render.
	info = NewPaginationInfo(0, 1, 8)
	if info.TotalPages != 1 {
		t.Errorf("expected a single empty page, got %d", info.TotalPages)
	}
}
