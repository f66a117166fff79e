package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1.234.567", "1234567"},
		{"1200", "1200"},
		{" 12,5 ", "12.5"},
		{"0", "0"},
		{"0,00", "0"},
		{"-3,50", "-3.5"},
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12,34,56", "0"},
		{"R$ 10", "0"},
	}
	for _, tt := range tests {
		got := Parse(tt.input)
		assert.True(t, got.Equal(dec(tt.want)), "Parse(%q) = %s, want %s", tt.input, got, tt.want)
	}
}

func TestParse_DotIsNeverDecimal(t *testing.T) {
	// "1.5" reads as fifteen, not one and a half.
	assert.True(t, Parse("1.5").Equal(decimal.NewFromInt(15)))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "R$\u00a00,00"},
		{"1", "R$\u00a01,00"},
		{"12.5", "R$\u00a012,50"},
		{"999.999", "R$\u00a01.000,00"},
		{"1234.56", "R$\u00a01.234,56"},
		{"1234567.891", "R$\u00a01.234.567,89"},
		{"-200", "-R$\u00a0200,00"},
		{"-0.001", "R$\u00a00,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(dec(tt.input)), "Format(%s)", tt.input)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"123", "123"},
		{"1234", "1.234"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.input))
	}
}
