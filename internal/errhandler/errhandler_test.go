package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/source"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"survey interrupt", terminal.InterruptErr, ExitOK},
		{"huh abort", fmt.Errorf("prompt: %w", huh.ErrUserAborted), ExitOK},
		{"account not found", &ledger.Error{Kind: ledger.ErrAccountNotFound, AccountID: "A1"}, ExitNotFound},
		{"transaction not found", fmt.Errorf("query: %w", &ledger.Error{Kind: ledger.ErrTransactionNotFound}), ExitNotFound},
		{"batch not found", source.ErrBatchNotFound, ExitNotFound},
		{"invalid account", &ledger.Error{Kind: ledger.ErrInvalidAccountNumber}, ExitInvalidInput},
		{"negative number", &ledger.Error{Kind: ledger.ErrInvalidTransactionNumber}, ExitInvalidInput},
		{"malformed file", fmt.Errorf("read: %w", source.ErrMalformedInput), ExitInvalidInput},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Account not found: 'A1'", Capitalize("account not found: 'A1'"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Ärger", Capitalize("ärger"))
}
