// Package currency maps currency codes to display symbols and formats amounts.
//
// A Formatter is an explicit value built from the user's currency code. Nothing in this
// package holds the "current" currency; callers pass the formatter they want and learn
// about preference changes through a Broadcaster they own.
package currency

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCode   = "USD"
	DefaultSymbol = "$"

	// StorageKey namespaces the persisted per-user preference.
	StorageKey = "finsim_currency"

	// Matches the default en-US number rendering of the web client.
	maxFractionDigits = 3
)

var symbols = map[string]string{
	"USD": "$",
	"INR": "₹",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"BTC": "₿",
	"AED": "د.إ",
	"SAR": "﷼",
}

// Normalize upper-cases and trims a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Symbol returns the display symbol for code, or "$" for unknown codes.
func Symbol(code string) string {
	if s, ok := symbols[Normalize(code)]; ok {
		return s
	}
	return DefaultSymbol
}

func IsSupported(code string) bool {
	_, ok := symbols[Normalize(code)]
	return ok
}

// Codes lists the supported currency codes in alphabetical order.
func Codes() []string {
	codes := make([]string, 0, len(symbols))
	for c := range symbols {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

type Options struct {
	ShowSign bool
}

type Formatter struct {
	code   string
	symbol string
}

// NewFormatter builds a formatter for code. Unknown codes keep their code but render
// with the default symbol.
func NewFormatter(code string) Formatter {
	code = Normalize(code)
	if code == "" {
		code = DefaultCode
	}
	return Formatter{code: code, symbol: Symbol(code)}
}

func (f Formatter) Code() string {
	if f.code == "" {
		return DefaultCode
	}
	return f.code
}

func (f Formatter) Symbol() string {
	if f.symbol == "" {
		return DefaultSymbol
	}
	return f.symbol
}

// FormatMoney renders the absolute value of amount after the symbol with English digit
// grouping and at most three fraction digits ("$1,234.567"). With ShowSign the result
// is prefixed by "+" for amounts >= 0 and "-" otherwise.
func (f Formatter) FormatMoney(amount float64, opts ...Options) string {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	// message.Printer is not safe for concurrent use, so each call gets its own.
	p := message.NewPrinter(language.English)
	formatted := f.Symbol() + p.Sprint(number.Decimal(math.Abs(amount), number.MaxFractionDigits(maxFractionDigits)))

	if !o.ShowSign {
		return formatted
	}
	if amount >= 0 {
		return "+" + formatted
	}
	return "-" + formatted
}
