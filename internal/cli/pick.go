//go:build !js

package cli

import "github.com/ncruces/zenity"

func pickChart() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open chart"),
		zenity.FileFilters{
			{Name: "Charts", Patterns: []string{"*.chart", "*.json", "*.mid", "*.midi"}},
		},
	)
}

// reportError shows err in a dialog; the error is still returned to the
// caller for the terminal.
func reportError(title string, err error) {
	_ = zenity.Error(err.Error(), zenity.Title(title), zenity.ErrorIcon)
}
