package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole units", amount: 100, want: 10000},
		{name: "cents survive binary float", amount: 25.50, want: 2550},
		{name: "classic float trap", amount: 0.1 + 0.2, want: 30},
		{name: "rounds half up", amount: 1.005, want: 101},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat(tt.amount))
		})
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 25.5, ToFloat(2550))
	assert.Equal(t, 0.01, ToFloat(1))
	assert.Equal(t, 0.0, ToFloat(0))
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(1000, 1000))
	assert.True(t, WithinTolerance(1000, 1001))
	assert.True(t, WithinTolerance(1001, 1000))
	assert.False(t, WithinTolerance(1000, 1002))
}
