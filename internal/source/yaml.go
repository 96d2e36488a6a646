package source

import (
	"context"
	"fmt"
	"os"

	"github.com/hance08/txindex/internal/ledger"
	"gopkg.in/yaml.v3"
)

// YAMLReader reads a YAML sequence of account_id/transaction_number/amount
// mappings.
type YAMLReader struct {
	path string
}

func NewYAMLReader(path string) *YAMLReader {
	return &YAMLReader{path: path}
}

func (r *YAMLReader) Name() string {
	return r.path
}

func (r *YAMLReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, r.path, err)
	}

	return toTransactions(ctx, r.path, records)
}
