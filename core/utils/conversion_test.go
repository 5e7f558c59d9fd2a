package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	v := 2.5
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"Float", 1.25, 1.25},
		{"Int", 3, 3},
		{"String", " 4.5 ", 4.5},
		{"Bytes", []byte("7"), 7},
		{"Pointer", &v, 2.5},
		{"Nil pointer", (*float64)(nil), 0},
		{"Nil", nil, 0},
		{"Garbage", "abc", 0},
		{"Numeric prefix", "12abc", 12},
		{"Decimal prefix", " 3.5 g", 3.5},
		{"Exponent prefix", "1e2kcal", 100},
		{"Sign only", "-x", 0},
		{"Empty", "", 0},
		{"NaN", math.NaN(), 0},
		{"Inf string", "Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat(tt.in))
		})
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 7, ToInt("7"))
	assert.Equal(t, 30, ToInt(" 30 "))
	assert.Equal(t, 2, ToInt("2.9"))
	assert.Equal(t, 0, ToInt("days"))
	assert.Equal(t, 14, ToInt("14d"))
	assert.Equal(t, 5, ToInt(int64(5)))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("YES"))
	assert.True(t, ToBool(1))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool(2.0))
}
