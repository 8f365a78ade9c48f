package reit

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UnsignedTx is the {to, data, value} triple a browser wallet signs and
// broadcasts. The gateway never signs or submits these.
type UnsignedTx struct {
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value"` // wei, decimal string
}

// Builder encodes user-side contract calls into unsigned transactions.
type Builder struct {
	quoter   *Quoter
	contract *Contract
}

func NewBuilder(quoter *Quoter, contract *Contract) *Builder {
	return &Builder{quoter: quoter, contract: contract}
}

// BuyShares builds a buyShares(amount) call with the quoted cost attached as
// msg.value. The quote is returned alongside so callers can echo it.
func (b *Builder) BuyShares(ctx context.Context, amountTokens string) (*UnsignedTx, *Quote, error) {
	q, err := b.quoter.Buy(ctx, amountTokens)
	if err != nil {
		return nil, nil, err
	}
	data, err := b.contract.Pack("buyShares", q.AmountTokens)
	if err != nil {
		return nil, nil, err
	}
	tx := &UnsignedTx{
		To:    b.contract.Address.Hex(),
		Data:  hexutil.Encode(data),
		Value: q.Value.String(),
	}
	return tx, q, nil
}

// SellShares builds a sellShares(amount) call. The refund is paid out by the
// contract, so value is zero.
func (b *Builder) SellShares(ctx context.Context, amountTokens string) (*UnsignedTx, error) {
	amount, err := ParsePositiveUnits(amountTokens)
	if err != nil {
		return nil, err
	}
	data, err := b.contract.Pack("sellShares", amount)
	if err != nil {
		return nil, err
	}
	return &UnsignedTx{
		To:    b.contract.Address.Hex(),
		Data:  hexutil.Encode(data),
		Value: "0",
	}, nil
}

// ClaimRent builds the no-argument claimRent() call.
func (b *Builder) ClaimRent() (*UnsignedTx, error) {
	data, err := b.contract.Pack("claimRent")
	if err != nil {
		return nil, err
	}
	return &UnsignedTx{
		To:    b.contract.Address.Hex(),
		Data:  hexutil.Encode(data),
		Value: "0",
	}, nil
}
