package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney renders an amount as dollars with thousand separators, e.g. $1,234.50.
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")
	return fmt.Sprintf("%s$%s.%s", sign, formatThousand(whole), frac)
}

// FormatPercent renders a fraction such as 0.15 as "15%".
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).String() + "%"
}

// DiscountedPrice applies an optional fractional discount to a whole-unit price.
func DiscountedPrice(price int, discount decimal.NullDecimal) decimal.Decimal {
	p := decimal.NewFromInt(int64(price))
	if !discount.Valid {
		return p
	}
	return p.Sub(p.Mul(discount.Decimal)).Round(2)
}

// Commission is percent (0-100) of amount, rounded to cents.
func Commission(amount decimal.Decimal, percent int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(2)
}

func formatThousand(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
