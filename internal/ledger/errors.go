package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccountNumber     = errors.New("invalid account number")
	ErrAccountNotFound          = errors.New("account not found")
	ErrInvalidTransactionNumber = errors.New("invalid transaction number")
	ErrTransactionNotFound      = errors.New("transaction not found")

	errEmptyLedger = errors.New("account ledger has no transactions")
)

// Error is returned by every failing store operation. Kind is one of the
// package sentinels, so callers branch with errors.Is and read the details
// with errors.As.
type Error struct {
	Kind              error
	AccountID         string
	TransactionNumber int64
	Reason            error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidTransactionNumber, ErrTransactionNotFound:
		return fmt.Sprintf("%v: account '%s', transaction %d", e.Kind, e.AccountID, e.TransactionNumber)
	}

	if e.Reason != nil {
		return fmt.Sprintf("%v '%s': %v", e.Kind, e.AccountID, e.Reason)
	}
	return fmt.Sprintf("%v: '%s'", e.Kind, e.AccountID)
}

func (e *Error) Unwrap() []error {
	if e.Reason != nil {
		return []error{e.Kind, e.Reason}
	}
	return []error{e.Kind}
}

func accountNotFound(accountID string) error {
	return &Error{Kind: ErrAccountNotFound, AccountID: accountID}
}
