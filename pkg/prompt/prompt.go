// Package prompt implements the interactive template selection menu used by
// the CLI. It is a thin seam over survey so callers without a terminal can
// swap in their own Picker.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// AllTemplates is the sentinel returned when the user asks for every template
// to be rendered.
const AllTemplates = "all"

// Picker selects a template name from the available set.
type Picker interface {
	PickTemplate(ctx context.Context, names []string) (string, error)
}

type surveyPicker struct{}

// NewPicker returns the survey-backed Picker.
func NewPicker() Picker {
	return surveyPicker{}
}

// PickTemplate offers the template names plus an "all templates" entry and
// returns the chosen name, or AllTemplates.
func (surveyPicker) PickTemplate(ctx context.Context, names []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errors.New("prompt: no templates available")
	}

	options := make([]string, 0, len(names)+1)
	options = append(options, names...)
	options = append(options, "all templates")

	var out string
	sel := &survey.Select{
		Message: "Pick a document template:",
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(sel, &out); err != nil {
		return "", translateSurveyErr(err)
	}

	if out == "all templates" {
		return AllTemplates, nil
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
