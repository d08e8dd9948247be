// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

import (
	"testing"
	"time"
)

func TestMonthKeyOf(t *testing.T) {
	date := time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)
	if got := MonthKeyOf(date); got != "2025-03" {
		t.Errorf("MonthKeyOf = %s, want 2025-03", got)
	}
}

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		raw       string
		expectErr bool
	}{
		{raw: "2025-01", expectErr: false},
		{raw: "2025-13", expectErr: true},
		{raw: "2025-1", expectErr: true},
		{raw: "garbage", expectErr: true},
		{raw: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseMonthKey(tt.raw)
			if (err != nil) != tt.expectErr {
				t.Errorf("ParseMonthKey(%q) error = %v, expectErr %v", tt.raw, err, tt.expectErr)
			}
		})
	}
}

func TestSortMonthKeysDesc(t *testing.T) {
	keys := []MonthKey{"2024-11", "2025-02", "2024-12", "2025-01"}
	SortMonthKeysDesc(keys)

	expected := []MonthKey{"2025-02", "2025-01", "2024-12", "2024-11"}
	for i, key := range expected {
		if keys[i] != key {
			t.Fatalf("keys[%d] = %s, want %s", i, keys[i], key)
		}
	}
}

func TestMonthKeyContains(t *testing.T) {
	key := MonthKey("2025-02")
	if !key.Contains(time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)) {
		t.Error("2025-02 must contain Feb 28")
	}
	if key.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("2025-02 must not contain Mar 1")
	}
}
