package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/txindex/internal/validation"
)

// PromptAccountID asks for an account number. Known ids are offered as
// suggestions; the answer is checked against the account number rule.
func PromptAccountID(message string, known []string) (string, error) {
	var accountID string

	err := huh.NewInput().
		Title(message).
		Description("1-32 characters, letters and digits only").
		Suggestions(known).
		Value(&accountID).
		Validate(validation.AccountIDInput).
		Run()

	return strings.TrimSpace(accountID), err
}

// PromptTransactionNumber asks for a non-negative transaction number.
func PromptTransactionNumber(message string) (int64, error) {
	var raw string

	err := huh.NewInput().
		Title(message).
		Value(&raw).
		Validate(validation.TransactionNumberInput).
		Run()
	if err != nil {
		return 0, err
	}

	return validation.TransactionNumber(raw)
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}
