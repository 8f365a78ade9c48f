package reit

import (
	"context"
	"math/big"
)

// Quote is a priced conversion between share tokens and native currency at
// the current linear share price.
type Quote struct {
	AmountTokens *big.Int // 18-decimal scaled token amount
	Value        *big.Int // wei cost (buy) or refund (sell)
	SharePrice   *big.Int // wei per whole token
}

// QuoteValue is the contract's own pricing rule: floor(amount * price / 1e18),
// integer arithmetic only. The truncation must match what the contract does
// on chain, so no rounding is applied.
func QuoteValue(amountScaled, priceWei *big.Int) *big.Int {
	v := new(big.Int).Mul(amountScaled, priceWei)
	return v.Quo(v, One)
}

// Quoter turns a human token amount into an ETH cost or refund using the
// live on-chain share price.
type Quoter struct {
	reader *Reader
}

func NewQuoter(reader *Reader) *Quoter {
	return &Quoter{reader: reader}
}

// Buy quotes the ETH cost of purchasing amountTokens shares.
func (q *Quoter) Buy(ctx context.Context, amountTokens string) (*Quote, error) {
	return q.quote(ctx, amountTokens)
}

// Sell quotes the ETH refund for selling amountTokens shares. Same linear
// rule as Buy; the distinction is presentational.
func (q *Quoter) Sell(ctx context.Context, amountTokens string) (*Quote, error) {
	return q.quote(ctx, amountTokens)
}

func (q *Quoter) quote(ctx context.Context, amountTokens string) (*Quote, error) {
	amount, err := ParsePositiveUnits(amountTokens)
	if err != nil {
		return nil, err
	}
	price, err := q.reader.SharePrice(ctx)
	if err != nil {
		return nil, err
	}
	return &Quote{
		AmountTokens: amount,
		Value:        QuoteValue(amount, price),
		SharePrice:   price,
	}, nil
}
