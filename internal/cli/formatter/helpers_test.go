package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole dollars", 400, "$400"},
		{"cents", 99.5, "$99.50"},
		{"zero", 0, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount))
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("12345678-aaaa-bbbb-cccc-1234567890ab"))
	assert.Equal(t, "short", ShortID("short"))
}

func TestOptionalDate(t *testing.T) {
	d := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-05", OptionalDate(&d))
	assert.Contains(t, OptionalDate(nil), "—")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"A", "LONG HEADER"},
		[][]string{
			{"longer cell", "x"},
			{"y", "z"},
		},
	)

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "LONG HEADER")
	assert.Contains(t, out, "longer cell")
	assert.Contains(t, out, "─")
}
