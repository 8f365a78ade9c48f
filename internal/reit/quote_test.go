package reit

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteValueFloors(t *testing.T) {
	// 1.5 tokens at 0.001 ETH each => 0.0015 ETH exactly.
	amount := mustParse("1.5")
	price := mustParse("0.001")
	cost := QuoteValue(amount, price)
	assert.Equal(t, "0.0015", FormatUnits(cost))

	// A price that does not divide evenly must truncate, never round up.
	odd := big.NewInt(3) // 3 wei per whole token
	cost = QuoteValue(mustParse("0.5"), odd)
	assert.Equal(t, "1", cost.String())
	cost = QuoteValue(mustParse("0.9"), odd)
	assert.Equal(t, "2", cost.String(), "2.7 wei floors to 2")
}

func TestQuoterBuy(t *testing.T) {
	backend := newFakeBackend()
	quoter := NewQuoter(NewReader(backend, testContract, time.Second))

	q, err := quoter.Buy(context.Background(), "1.5")
	require.NoError(t, err)
	assert.Equal(t, "0.0015", FormatUnits(q.Value))
	assert.Equal(t, "0.001", FormatUnits(q.SharePrice))
	assert.Equal(t, mustParse("1.5"), q.AmountTokens)
}

func TestQuoterSellSameRule(t *testing.T) {
	backend := newFakeBackend()
	quoter := NewQuoter(NewReader(backend, testContract, time.Second))

	buy, err := quoter.Buy(context.Background(), "7.25")
	require.NoError(t, err)
	sell, err := quoter.Sell(context.Background(), "7.25")
	require.NoError(t, err)
	assert.Equal(t, buy.Value, sell.Value)
}

func TestQuoterRejectsBadAmounts(t *testing.T) {
	backend := newFakeBackend()
	quoter := NewQuoter(NewReader(backend, testContract, time.Second))

	for _, bad := range []string{"", "abc", "0", "-1", "1.2.3"} {
		_, err := quoter.Buy(context.Background(), bad)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid, "amount %q", bad)
	}
	assert.Zero(t, backend.viewCalls, "invalid amounts must not reach the node")
}
