package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/validation"
)

// JSONReader reads an array of {"account_id","transaction_number","amount"}
// objects.
type JSONReader struct {
	path string
}

func NewJSONReader(path string) *JSONReader {
	return &JSONReader{path: path}
}

func (r *JSONReader) Name() string {
	return r.path
}

func (r *JSONReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, r.path, err)
	}

	return toTransactions(ctx, r.path, records)
}

func toTransactions(ctx context.Context, path string, records []record) ([]ledger.Transaction, error) {
	txs := make([]ledger.Transaction, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rec.TransactionNumber < 0 {
			return nil, fmt.Errorf("%w: %s: record %d: transaction number can't be negative", ErrMalformedInput, path, i+1)
		}
		if err := validation.FiniteAmount(rec.Amount); err != nil {
			return nil, fmt.Errorf("%w: %s: record %d: amount %v is %w", ErrMalformedInput, path, i+1, rec.Amount, err)
		}
		txs = append(txs, rec.transaction())
	}
	return txs, nil
}
