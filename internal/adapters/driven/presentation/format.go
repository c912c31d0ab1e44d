package presentation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "nb"

// NumberFormatter renders counts with locale-aware digit grouping.
type NumberFormatter struct {
	printer *message.Printer
	tag     language.Tag
}

// NewNumberFormatter creates a formatter for a BCP 47 locale.
// Unparseable locales fall back to DefaultLocale.
func NewNumberFormatter(locale string) *NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &NumberFormatter{
		printer: message.NewPrinter(tag),
		tag:     tag,
	}
}

// Format returns n with thousands separators.
func (f *NumberFormatter) Format(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Locale returns the resolved language tag.
func (f *NumberFormatter) Locale() string {
	return f.tag.String()
}
