package cmdutil

import "github.com/hance08/txindex/internal/validation"

// ParseTransactionNumber parses a positional transaction number. Negative
// values are passed through so the ledger reports them.
func ParseTransactionNumber(arg string) (int64, error) {
	return validation.ParseNumber(arg)
}
