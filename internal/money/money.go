// Package money parses and formats BRL amounts in the pt-BR convention.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the currency prefix used by Format. The separator after "R$" is a
// non-breaking space, matching the pt-BR locale output.
const Symbol = "R$\u00a0"

// Parse reads a decimal-comma amount such as "1.234,56".
// Every "." is a thousands separator and is dropped, the first "," becomes the
// decimal point. Empty or unparsable input yields zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders d as "R$ 1.234,56" with two decimal places.
// Negative values get a leading minus: "-R$ 12,00".
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(Symbol)
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// groupThousands inserts "." every three digits from the right.
// "1234567" -> "1.234.567"
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte('.')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}
