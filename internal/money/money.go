// Package money renders catalog prices for display.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
	currency.CAD: "CA$",
	currency.AUD: "A$",
}

// Formatter prints whole currency amounts with locale digit grouping.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

// NewFormatter builds a formatter for a BCP 47 locale and ISO 4217 code.
// The locale drives digit grouping only; the symbol always precedes the
// amount, which is the English layout. Callers restrict locales accordingly.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	symbol, ok := symbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit, symbol: symbol}, nil
}

var usd = &Formatter{
	printer: message.NewPrinter(language.AmericanEnglish),
	unit:    currency.USD,
	symbol:  "$",
}

// Default is the US dollar formatter used by the site.
func Default() *Formatter { return usd }

// Format renders amount rounded to a whole unit, e.g. 15000 -> "$15,000".
func Format(amount float64) string { return usd.Format(amount) }

// FormatRange renders a price range, e.g. "$25,000 - $35,000".
func FormatRange(min, max float64) string { return usd.FormatRange(min, max) }

func (f *Formatter) Format(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	return sign + f.symbol + f.printer.Sprintf("%d", n)
}

func (f *Formatter) FormatRange(min, max float64) string {
	return f.Format(min) + " - " + f.Format(max)
}

// Code is the ISO 4217 currency code.
func (f *Formatter) Code() string { return f.unit.String() }
