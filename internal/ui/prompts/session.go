package prompts

import "github.com/charmbracelet/huh"

// Action is one entry of the interactive session menu.
type Action string

const (
	ActionFind     Action = "find"
	ActionList     Action = "list"
	ActionAverage  Action = "avg"
	ActionAccounts Action = "accounts"
	ActionReload   Action = "reload"
	ActionQuit     Action = "quit"
)

func PromptAction() (Action, error) {
	selected := ActionFind

	err := huh.NewSelect[Action]().
		Title("What do you want to do?").
		Options(
			huh.NewOption("Find a transaction", ActionFind),
			huh.NewOption("List an account's transactions", ActionList),
			huh.NewOption("Average amount of an account", ActionAverage),
			huh.NewOption("Show all accounts", ActionAccounts),
			huh.NewOption("Load another batch", ActionReload),
			huh.NewOption("Quit", ActionQuit),
		).
		Value(&selected).
		Run()

	return selected, err
}
