// Package source reads transaction batches from files and from the sqlite
// batch feed. Readers keep records in input order, since the ledger keeps the
// first record it sees for an account and transaction number.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hance08/txindex/internal/constants"
	"github.com/hance08/txindex/internal/ledger"
)

var (
	ErrUnknownFormat  = errors.New("unknown batch format")
	ErrBatchNotFound  = errors.New("batch not found")
	ErrBatchExists    = errors.New("batch already exists")
	ErrMalformedInput = errors.New("malformed batch record")
)

// Reader yields one batch of transactions.
type Reader interface {
	Read(ctx context.Context) ([]ledger.Transaction, error)
	Name() string
}

// record is the shape shared by the JSON and YAML batch formats.
type record struct {
	AccountID         string  `json:"account_id" yaml:"account_id"`
	TransactionNumber int64   `json:"transaction_number" yaml:"transaction_number"`
	Amount            float64 `json:"amount" yaml:"amount"`
}

func (r record) transaction() ledger.Transaction {
	return ledger.Transaction{
		AccountID: r.AccountID,
		Number:    r.TransactionNumber,
		Amount:    r.Amount,
	}
}

// Format guesses the batch format from the file extension.
func Format(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return constants.FormatCSV, nil
	case ".json":
		return constants.FormatJSON, nil
	case ".yaml", ".yml":
		return constants.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: '%s' (expected .csv, .json, .yaml or .yml)", ErrUnknownFormat, path)
	}
}

// Open returns the file reader matching path's extension.
func Open(path string) (Reader, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case constants.FormatCSV:
		return NewCSVReader(path), nil
	case constants.FormatJSON:
		return NewJSONReader(path), nil
	default:
		return NewYAMLReader(path), nil
	}
}

func malformed(path string, line int, format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrMalformedInput, path, line, fmt.Sprintf(format, args...))
}
