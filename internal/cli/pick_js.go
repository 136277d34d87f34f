//go:build js

package cli

import "errors"

func pickChart() (string, error) {
	return "", errors.New("no file picker in the browser")
}

func reportError(string, error) {}
