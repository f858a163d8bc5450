package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/repositories/chain"
)

func rpcServer(t *testing.T, result string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_getBalance", req["method"])

		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      1,
				"result":  result,
			})
		}
	}))
}

func TestCheckPayment_BalanceDetected(t *testing.T) {
	srv := rpcServer(t, "0xde0b6b3a7640000", http.StatusOK) // 1 ETH in wei
	defer srv.Close()

	oracle := chain.NewInfuraOracle(srv.URL, "test-key")
	txHash, err := oracle.CheckPayment(context.Background(), "0xabc", domain.CurrencyUSDT, decimal.NewFromInt(100))

	require.NoError(t, err)
	require.NotNil(t, txHash)
	assert.Equal(t, "simulated_tx_hash", *txHash)
}

func TestCheckPayment_ZeroBalance(t *testing.T) {
	srv := rpcServer(t, "0x0", http.StatusOK)
	defer srv.Close()

	oracle := chain.NewInfuraOracle(srv.URL, "test-key")
	txHash, err := oracle.CheckPayment(context.Background(), "0xabc", domain.CurrencyUSDC, decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.Nil(t, txHash)
}

func TestCheckPayment_UnbackedCurrencyReportsNotPaid(t *testing.T) {
	// No server at all: LTC must short-circuit before any network call.
	oracle := chain.NewInfuraOracle("http://127.0.0.1:0", "test-key")
	txHash, err := oracle.CheckPayment(context.Background(), "ltc1addr", domain.CurrencyLTC, decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.Nil(t, txHash)
}

func TestCheckPayment_MissingAPIKeyReportsNotPaid(t *testing.T) {
	oracle := chain.NewInfuraOracle("http://127.0.0.1:0", "")
	txHash, err := oracle.CheckPayment(context.Background(), "0xabc", domain.CurrencyUSDT, decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.Nil(t, txHash)
}

func TestCheckPayment_ServerErrorSurfaces(t *testing.T) {
	srv := rpcServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	oracle := chain.NewInfuraOracle(srv.URL, "test-key")
	txHash, err := oracle.CheckPayment(context.Background(), "0xabc", domain.CurrencyUSDT, decimal.NewFromInt(100))

	require.Error(t, err)
	assert.Nil(t, txHash)
}

func TestCheckPayment_RPCErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32602, "message": "invalid params"},
		})
	}))
	defer srv.Close()

	oracle := chain.NewInfuraOracle(srv.URL, "test-key")
	txHash, err := oracle.CheckPayment(context.Background(), "0xabc", domain.CurrencyUSDT, decimal.NewFromInt(100))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid params")
	assert.Nil(t, txHash)
}
