package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		precision int
		want      string
	}{
		{"whole", 100, 2, "100.00"},
		{"rounds half up", 0.125, 2, "0.13"},
		{"negative", -2512.54, 2, "-2512.54"},
		{"no float drift", 0.1 + 0.2, 2, "0.30"},
		{"zero precision", 7236.5, 0, "7237"},
		{"negative precision clamps", 7.4, -1, "7"},
		{"four places", 149652.72333333, 4, "149652.7233"},
		{"infinity", math.Inf(1), 2, "+Inf"},
		{"nan", math.NaN(), 2, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.precision))
		})
	}
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "75.00", FormatCompact(75, 2))
	assert.Equal(t, "0.00", FormatCompact(0, 2))
	assert.Equal(t, "8.988466e+307", FormatCompact(math.MaxFloat64/2, 2))
	assert.Equal(t, "1.112537e-308", FormatCompact(0x1p-1023, 2))
}

func TestFormatCompact_SmallAmounts(t *testing.T) {
	assert.Equal(t, "1", FormatCompact(0.5, 0))
	assert.Equal(t, "-1", FormatCompact(-0.7, 0))
	assert.Equal(t, "0.01", FormatCompact(0.005, 2))
	assert.Equal(t, "3.000000e-01", FormatCompact(0.3, 0))
	assert.Equal(t, "4.000000e-03", FormatCompact(0.004, 2))
}
