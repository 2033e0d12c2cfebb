package utils

import (
	"github.com/shopspring/decimal"
)

// currencySymbols maps ISO currency codes to their display symbols.
// Unknown codes fall back to the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KES": "KSh",
	"TZS": "Tsh",
	"CAD": "C$",
	"AUD": "A$",
}

// zeroPrecisionCurrencies lists currencies without a minor unit.
var zeroPrecisionCurrencies = map[string]bool{
	"JPY": true,
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// CurrencyPrecision returns the number of decimal places for a currency code.
func CurrencyPrecision(code string) int {
	if zeroPrecisionCurrencies[code] {
		return 0
	}
	return 2
}

// FormatAmount formats an amount with the currency's symbol and precision.
// Example: FormatAmount(decimal 1250.5, "KES") returns "KSh 1250.50".
func FormatAmount(amount decimal.Decimal, code string) string {
	return CurrencySymbol(code) + " " + amount.StringFixed(int32(CurrencyPrecision(code)))
}

// FormatWithPrecision formats an amount rounded to the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
