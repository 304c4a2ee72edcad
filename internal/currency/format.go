package currency

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// layout pins a currency to a fixed locale and symbol placement, so sign and
// separator conventions do not depend on the runtime locale of the caller.
type layout struct {
	tag    language.Tag
	symbol string
	suffix bool // symbol rendered after the amount
}

var layouts = map[string]layout{
	"USD": {language.AmericanEnglish, "$", false},
	"EUR": {language.English, "€", false},
	"GBP": {language.BritishEnglish, "£", false},
	"JPY": {language.Japanese, "¥", false},
	"PLN": {language.Polish, "zł", true},
	"RUB": {language.Russian, "₽", true},
	"UAH": {language.Ukrainian, "₴", false},
	"KZT": {language.Kazakh, "₸", false},
	"TRY": {language.Turkish, "₺", false},
}

// formatAmount renders a whole-unit display string for the amount. Amounts
// are shown without cents, rounded half away from zero. A code that is not a
// recognized ISO currency falls back to a plain "<CODE> <integer>" string.
func formatAmount(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	rounded := math.Round(amount)

	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Sprintf("%s %d", code, int64(rounded))
	}

	// The sign goes before the symbol ("-£16", not "£-16"), so it is split
	// off before the digits are rendered.
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	l, ok := layouts[code]
	if !ok {
		// Recognized ISO code outside the native set: code-prefixed,
		// English digit grouping.
		l = layout{language.English, code + " ", false}
	}
	p := message.NewPrinter(l.tag)
	n := p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	if l.suffix {
		return sign + n + " " + l.symbol
	}
	return sign + l.symbol + n
}
