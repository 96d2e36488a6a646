package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/txindex/internal/ui"
)

// PromptBatch lets the user pick one of the imported feed batches.
func PromptBatch(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no batches imported yet, run 'txindex feed import' first")
	}

	var name string
	prompt := &survey.Select{
		Message: "Select a batch to load:",
		Options: names,
		Default: names[len(names)-1],
	}

	if err := survey.AskOne(prompt, &name, ui.SelectOptions()...); err != nil {
		return "", err
	}
	return name, nil
}
