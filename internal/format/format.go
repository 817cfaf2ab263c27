// Package format renders a time value as a 24-hour clock string.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"timepick/internal/domain"
)

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.AmericanEnglish

// Formatter renders time values as "HH:MM" using the digit rules of its
// locale. It holds no state beyond the locale and is safe to share.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// ForLocale parses a BCP 47 locale string such as "en-US" or "de".
func ForLocale(locale string) (*Formatter, error) {
	if locale == "" {
		return New(DefaultLocale), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return New(tag), nil
}

// Format returns v as two-digit hour and minute joined by a colon, with no
// day-period suffix.
func (f *Formatter) Format(v domain.TimeValue) string {
	return f.printer.Sprintf("%v:%v", twoDigits(v.Hours()), twoDigits(v.Minutes()))
}

func twoDigits(n int) number.Formatter {
	return number.Decimal(n, number.MinIntegerDigits(2), number.NoSeparator())
}
