package domain

import "fmt"

// Currency is the closed set of currencies invoices can be denominated in.
type Currency string

const (
	CurrencyLTC  Currency = "LTC"
	CurrencyUSDT Currency = "USDT"
	CurrencyUSDC Currency = "USDC"
)

// ParseCurrency validates a raw currency code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyLTC:
		return CurrencyLTC, nil
	case CurrencyUSDT:
		return CurrencyUSDT, nil
	case CurrencyUSDC:
		return CurrencyUSDC, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", code)
	}
}

// SupportedCurrencies returns the full supported set, in a stable order.
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyLTC, CurrencyUSDT, CurrencyUSDC}
}
