package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{v: 0, places: 0, want: "0"},
		{v: 999, places: 0, want: "999"},
		{v: 1000, places: 0, want: "1,000"},
		{v: 1234567.891, places: 0, want: "1,234,568"},
		{v: 1234567.891, places: 2, want: "1,234,567.89"},
		{v: -45210.5, places: 0, want: "-45,211"},
		{v: 0.125, places: 2, want: "0.13"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.v, tt.places, ","))
	}
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("kr")
	assert.Equal(t, "2,000,000 kr", f.Format(2_000_000))

	f.Currency = ""
	f.Separator = " "
	assert.Equal(t, "12 500", f.Format(12_499.6))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 470.73, Round(470.7347, 2))
	assert.Equal(t, 1.0, Round(0.5, 0))
}
