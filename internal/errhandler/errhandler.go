package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/source"
	"github.com/pterm/pterm"
)

// Exit codes returned by the CLI.
const (
	ExitOK = iota
	ExitFailure
	ExitInvalidInput
	ExitNotFound
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, IsInterrupt(err):
		return ExitOK
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, source.ErrBatchNotFound):
		return ExitNotFound
	case errors.Is(err, ledger.ErrInvalidAccountNumber),
		errors.Is(err, ledger.ErrInvalidTransactionNumber),
		errors.Is(err, source.ErrMalformedInput),
		errors.Is(err, source.ErrUnknownFormat):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

// HandleError prints err for the user and returns the exit code to use.
func HandleError(err error) int {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return ExitOK
	}

	pterm.Error.Println(Capitalize(err.Error()))
	return ExitCode(err)
}

// Exit prints err (if any) and terminates the process.
func Exit(err error) {
	if err == nil {
		return
	}
	os.Exit(HandleError(err))
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
