package ui

import "github.com/AlecAivazis/survey/v2"

// SelectOptions keeps survey pickers visually in line with the huh prompts.
func SelectOptions() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = ">"
			icons.SelectFocus.Text = "→"
		}),
		survey.WithPageSize(10),
	}
}
