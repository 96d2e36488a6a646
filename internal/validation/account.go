package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hance08/txindex/internal/constants"
)

var (
	ErrEmptyAccountID   = errors.New("account number can't be empty")
	ErrAccountIDTooLong = fmt.Errorf("account number too long (max %d characters)", constants.MaxAccountIDLen)
	ErrAccountIDCharset = errors.New("account number may only contain 0-9, A-Z and a-z")
)

// AccountID checks the account number rule: 1 to MaxAccountIDLen ASCII
// letters or digits.
func AccountID(id string) error {
	if len(id) == 0 {
		return ErrEmptyAccountID
	}

	if len(id) > constants.MaxAccountIDLen {
		return ErrAccountIDTooLong
	}

	for i := 0; i < len(id); i++ {
		if !isAlphanumeric(id[i]) {
			return fmt.Errorf("%w (found %q at position %d)", ErrAccountIDCharset, id[i], i+1)
		}
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// ParseNumber parses a base-10 transaction number and leaves the sign
// unchecked.
func ParseNumber(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("transaction number can't be empty")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction number '%s'", s)
	}
	return n, nil
}

// TransactionNumber parses a non-negative transaction number.
func TransactionNumber(s string) (int64, error) {
	n, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("transaction number can't be negative")
	}

	return n, nil
}

// Amount parses a floating-point amount. Infinities and NaN are rejected.
func Amount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount can't be empty")
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("amount '%s' is out of range", s)
		}
		return 0, fmt.Errorf("invalid number format '%s'", s)
	}

	if err := FiniteAmount(amount); err != nil {
		return 0, fmt.Errorf("amount '%s' is %w", s, err)
	}

	return amount, nil
}

var ErrAmountNotFinite = errors.New("not a finite number")

// FiniteAmount rejects infinities and NaN.
func FiniteAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrAmountNotFinite
	}
	return nil
}

// AccountIDInput adapts AccountID for interactive prompts, trimming
// surrounding whitespace first.
func AccountIDInput(s string) error {
	return AccountID(strings.TrimSpace(s))
}

// TransactionNumberInput adapts TransactionNumber for interactive prompts.
func TransactionNumberInput(s string) error {
	_, err := TransactionNumber(s)
	return err
}
