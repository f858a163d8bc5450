package repositories

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChainBalanceOracle is the contract with the external blockchain-data
// source. CheckPayment returns a transaction reference when the address's
// on-chain activity satisfies the expected payment, or nil when no payment
// is detected yet. Errors are transient oracle failures; callers must treat
// them as "not yet paid" rather than letting them propagate.
//
// The current detection logic is placeholder-quality (a raw balance probe,
// not a matched incoming payment); the interface, not the stub behaviour,
// is the contract.
type ChainBalanceOracle interface {
	CheckPayment(ctx context.Context, address string, currency domain.Currency, expectedAmount decimal.Decimal) (*string, error)
}
