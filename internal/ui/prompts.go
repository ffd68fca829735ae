package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned by prompts when the UI is in non-interactive mode
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return false, ErrNonInteractive
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInputWithValidation prompts with custom validation
func (u *UI) PromptInputWithValidation(prompt, defaultValue string, validate func(string) error) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}
	err := survey.AskOne(p, &result, survey.WithValidator(validator))
	return result, err
}

// PromptMultiline prompts for free-form text spanning several lines.
// The text is returned exactly as typed.
func (u *UI) PromptMultiline(prompt string) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var result string
	p := &survey.Multiline{
		Message: prompt,
	}

	err := survey.AskOne(p, &result)
	return result, err
}
