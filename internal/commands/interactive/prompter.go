package interactive

import (
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

// Prompter asks the user to choose from a list or to type a value.
type Prompter interface {
	Select(label string, items []string) (int, error)
	Input(label string, validate func(string) error) (string, error)
}

// TerminalPrompter asks the questions on the terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return -1, errors.WithStack(err)
	}
	return i, nil
}

func (TerminalPrompter) Input(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return value, nil
}
