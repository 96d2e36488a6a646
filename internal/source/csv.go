package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/txindex/internal/constants"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/validation"
)

// CSVReader reads "account_id,transaction_number,amount" rows. A first row
// naming those columns is treated as a header and skipped. Account ids are
// passed through untouched so the ledger can reject them.
type CSVReader struct {
	path string
}

func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

func (r *CSVReader) Name() string {
	return r.path
}

func (r *CSVReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	return r.decode(ctx, f)
}

func (r *CSVReader) decode(ctx context.Context, in io.Reader) ([]ledger.Transaction, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 3
	cr.Comment = '#'

	var txs []ledger.Transaction
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, r.path, err)
		}
		line, _ := cr.FieldPos(0)

		if len(txs) == 0 && isHeader(row) {
			continue
		}

		number, err := validation.TransactionNumber(row[1])
		if err != nil {
			return nil, malformed(r.path, line, "%v", err)
		}

		amount, err := validation.Amount(row[2])
		if err != nil {
			return nil, malformed(r.path, line, "%v", err)
		}

		txs = append(txs, ledger.Transaction{
			AccountID: row[0],
			Number:    number,
			Amount:    amount,
		})
	}

	return txs, nil
}

func isHeader(row []string) bool {
	return strings.EqualFold(strings.TrimSpace(row[0]), constants.ColumnAccountID) &&
		strings.EqualFold(strings.TrimSpace(row[1]), constants.ColumnTransactionNumber) &&
		strings.EqualFold(strings.TrimSpace(row[2]), constants.ColumnAmount)
}
