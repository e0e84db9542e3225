// Package prompt asks the user yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm writes msg followed by "(Y/n)" or "(y/N)" to w and reads one line from r.
//
// With def true, anything but "n" confirms; with def false, only "y" does.
// Input is trimmed and case-insensitive. assumeYes skips the question and
// confirms without touching r or w.
func Confirm(r io.Reader, w io.Writer, msg string, def, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	choices := "(y/N)"
	if def {
		choices = "(Y/n)"
	}
	if _, err := fmt.Fprintf(w, "%s %s ", strings.TrimSpace(msg), choices); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))

	if def {
		return answer != "n", nil
	}
	return answer == "y", nil
}
