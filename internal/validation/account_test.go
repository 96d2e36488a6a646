package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"digits", "35102049000000990200522828", nil},
		{"mixed case", "AbC123xyz", nil},
		{"single char", "Z", nil},
		{"exactly 32", strings.Repeat("9", 32), nil},
		{"empty", "", ErrEmptyAccountID},
		{"33 chars", strings.Repeat("a", 33), ErrAccountIDTooLong},
		{"space", "FA42350 0239", ErrAccountIDCharset},
		{"symbol", "$23^4m", ErrAccountIDCharset},
		{"dash", "PL-123", ErrAccountIDCharset},
		{"colon", "Assets:Bank", ErrAccountIDCharset},
		{"unicode digit", "١٢٣", ErrAccountIDCharset},
		{"trailing newline", "ABC\n", ErrAccountIDCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AccountID(tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountID_CharsetReportsPosition(t *testing.T) {
	err := AccountID("AB#C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 3")
}

func TestAccountIDInput_TrimsWhitespace(t *testing.T) {
	assert.NoError(t, AccountIDInput("  A1  "))
	assert.ErrorIs(t, AccountIDInput("   "), ErrEmptyAccountID)
}

func TestTransactionNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{" 42 ", 42, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TransactionNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Error(t, TransactionNumberInput(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"100", 100, false},
		{"-2512.54", -2512.54, false},
		{" 1e300 ", 1e300, false},
		{"1.7976931348623157e308", 1.7976931348623157e308, false},
		{"1e400", 0, true},
		{"inf", 0, true},
		{"-Inf", 0, true},
		{"NaN", 0, true},
		{"12,50", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Amount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFiniteAmount(t *testing.T) {
	assert.NoError(t, FiniteAmount(math.MaxFloat64))
	assert.NoError(t, FiniteAmount(-math.MaxFloat64))
	assert.ErrorIs(t, FiniteAmount(math.Inf(1)), ErrAmountNotFinite)
	assert.ErrorIs(t, FiniteAmount(math.Inf(-1)), ErrAmountNotFinite)
	assert.ErrorIs(t, FiniteAmount(math.NaN()), ErrAmountNotFinite)

	_, err := Amount("Inf")
	assert.ErrorIs(t, err, ErrAmountNotFinite)
	assert.EqualError(t, err, "amount 'Inf' is not a finite number")
}

func TestParseNumber_KeepsSign(t *testing.T) {
	n, err := ParseNumber(" -3 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n)

	_, err = TransactionNumber("-3")
	assert.EqualError(t, err, "transaction number can't be negative")

	_, err = ParseNumber("12abc")
	assert.Error(t, err)
}
