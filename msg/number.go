package msg

import (
	"log/slog"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders numeric values for [Number] elements.
// Implementations must be safe for concurrent use.
type NumberFormatter interface {
	FormatNumber(v float64, f NumberFormat, locale language.Tag) (string, error)
}

// DefaultNumberFormatter is used when no [WithNumberFormatter] option is
// given.
var DefaultNumberFormatter NumberFormatter = LocaleNumberFormatter{}

// LocaleNumberFormatter formats numbers with the CLDR data of
// golang.org/x/text.
//
//   - [KindNumber] renders a grouped decimal with up to three fraction digits.
//   - [KindInteger] truncates toward zero and renders a grouped integer.
//   - [KindPercent] renders trunc(v*100) followed by "%".
//   - [KindCurrency] renders the locale symbol and the amount rounded to the
//     currency's minor unit. Well-formed codes without CLDR data render as
//     "CODE amount".
type LocaleNumberFormatter struct{}

// FormatNumber implements [NumberFormatter].
func (LocaleNumberFormatter) FormatNumber(
	v float64,
	f NumberFormat,
	locale language.Tag,
) (string, error) {
	p := message.NewPrinter(locale)

	switch f.Kind {
	case KindNumber:
		return p.Sprint(number.Decimal(v)), nil

	case KindInteger:
		n, err := safecast.Truncate[int64](v)
		if err != nil {
			return "", ErrNumberRange.Wrap(err).With(slog.Float64("value", v))
		}

		return p.Sprint(number.Decimal(n)), nil

	case KindPercent:
		n, err := safecast.Truncate[int64](v * 100)
		if err != nil {
			return "", ErrNumberRange.Wrap(err).With(slog.Float64("value", v))
		}

		return strconv.FormatInt(n, 10) + "%", nil

	case KindCurrency:
		code, err := currencyCode(f.Currency)
		if err != nil {
			return "", err
		}

		unit, err := currency.ParseISO(code)
		if err != nil || unit == (currency.Unit{}) {
			return code + " " + p.Sprint(number.Decimal(v,
				number.MinFractionDigits(2),
				number.MaxFractionDigits(2),
			)), nil
		}

		return p.Sprint(currency.Symbol(unit.Amount(v))), nil

	default:
		return "", ErrUnknownElement.With(slog.String("kind", f.Kind.String()))
	}
}

// currencyCode validates and upper-cases a three letter ASCII code.
func currencyCode(code string) (string, error) {
	if len(code) != 3 {
		return "", ErrInvalidCurrency.With(slog.String("code", code))
	}

	for i := range len(code) {
		c := code[i]
		if ('a' > c || c > 'z') && ('A' > c || c > 'Z') {
			return "", ErrInvalidCurrency.With(slog.String("code", code))
		}
	}

	return strings.ToUpper(code), nil
}
