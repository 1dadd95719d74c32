// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for the root domains to generate when none were
// selected via flags or config. The mandatory set is noted but not shown as
// selectable; it is always included.
func RunGenerateForm(selected *[]string, available []string) error {
	options := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select root domains").
				Description("Cross-referenced domains are included automatically.").
				Options(options...).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return errors.New("select at least one domain")
					}
					return nil
				}).
				Value(selected),
		),
	).WithTheme(Theme())

	return form.Run()
}
