// Package money formats monetary amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round rounds v half away from zero to places decimals.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Format renders v with the given number of decimals and a thousands
// separator, e.g. Format(1234567.891, 0, ",") == "1,234,568".
func Format(v float64, places int32, sep string) string {
	s := decimal.NewFromFloat(v).Round(places).StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Formatter renders whole-unit amounts with a currency suffix.
type Formatter struct {
	Currency  string
	Separator string
	Places    int32
}

func NewFormatter(currency string) Formatter {
	return Formatter{Currency: currency, Separator: ",", Places: 0}
}

func (f Formatter) Format(v float64) string {
	s := Format(v, f.Places, f.Separator)
	if f.Currency == "" {
		return s
	}
	return s + " " + f.Currency
}
