// Package dateutil provides German-locale date helpers for the form's
// date field.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date string that matches no accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// DisplayLayout is the German date form used on the printed document.
const DisplayLayout = "02.01.2006"

// acceptedLayouts are the input forms Normalize understands, tried in order.
var acceptedLayouts = []string{
	DisplayLayout,
	"2006-01-02", // ISO, common when scripting the CLI
	"2.1.2006",   // unpadded German
}

// Today returns the current date in display form.
func Today() string {
	return time.Now().Format(DisplayLayout)
}

// Normalize parses a date in any accepted layout and returns it in display
// form. Returns ErrInvalidDate when no layout matches.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q (accepted: DD.MM.YYYY, YYYY-MM-DD)", ErrInvalidDate, s)
}
