package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

func TestParseCurrency(t *testing.T) {
	for _, code := range []string{"LTC", "USDT", "USDC"} {
		c, err := domain.ParseCurrency(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(c))
	}

	_, err := domain.ParseCurrency("DOGE")
	require.Error(t, err)

	// Codes are case sensitive.
	_, err = domain.ParseCurrency("usdt")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "staff", "client"} {
		r, err := domain.ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(r))
	}

	_, err := domain.ParseRole("superuser")
	require.Error(t, err)
}

func TestStaffAddressFor(t *testing.T) {
	usdt := "0xusdt"
	empty := ""
	staff := domain.Staff{
		USDTAddress: &usdt,
		USDCAddress: &empty,
	}

	addr, ok := staff.AddressFor(domain.CurrencyUSDT)
	require.True(t, ok)
	assert.Equal(t, usdt, addr)

	// Empty string counts as unconfigured.
	_, ok = staff.AddressFor(domain.CurrencyUSDC)
	assert.False(t, ok)

	_, ok = staff.AddressFor(domain.CurrencyLTC)
	assert.False(t, ok)
}

func TestInvoiceIsPaid(t *testing.T) {
	inv := domain.Invoice{Status: domain.InvoiceStatusPending}
	assert.False(t, inv.IsPaid())

	inv.Status = domain.InvoiceStatusPaid
	assert.True(t, inv.IsPaid())
}
