package reit

import (
	"context"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	"github.com/olympusreit/gateway/internal/metrics"
)

// TxBackend is the write surface of the node client: signed submission that
// blocks until the transaction is mined.
type TxBackend interface {
	SendAndWait(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Receipt, error)
	SignerConfigured() bool
}

// TxResult reports a mined privileged transaction. Status follows the
// receipt: 1 success, 0 reverted.
type TxResult struct {
	Action    string `json:"action"`
	TxHash    string `json:"txHash"`
	Status    uint64 `json:"status"`
	AmountWei string `json:"amountWei"`
}

// Executor submits the owner-privileged contract calls with the server-held
// key. Authorization happens upstream; the executor only checks that a
// signer exists at all.
type Executor struct {
	backend  TxBackend
	contract *Contract
	log      zerolog.Logger
}

func NewExecutor(backend TxBackend, contract *Contract, log zerolog.Logger) *Executor {
	return &Executor{backend: backend, contract: contract, log: log}
}

// Ready reports whether a signing key is configured.
func (e *Executor) Ready() bool { return e.backend.SignerConfigured() }

// DistributeRent sends distributeRent() with amountETH attached as value.
func (e *Executor) DistributeRent(ctx context.Context, amountETH string) (*TxResult, error) {
	value, err := ParsePositiveUnits(amountETH)
	if err != nil {
		return nil, err
	}
	return e.submit(ctx, "distributeRent", value)
}

// InjectLiquidity sends injectLiquidity() with amountETH attached as value.
// Funds the vault without minting shares.
func (e *Executor) InjectLiquidity(ctx context.Context, amountETH string) (*TxResult, error) {
	value, err := ParsePositiveUnits(amountETH)
	if err != nil {
		return nil, err
	}
	return e.submit(ctx, "injectLiquidity", value)
}

// AdjustSharePrice sends adjustSharePrice(newPrice) with the price scaled to
// wei. NAV update, no value attached.
func (e *Executor) AdjustSharePrice(ctx context.Context, newPriceETH string) (*TxResult, error) {
	price, err := ParsePositiveUnits(newPriceETH)
	if err != nil {
		return nil, err
	}
	return e.submit(ctx, "adjustSharePrice", nil, price)
}

// EmergencyWithdraw sends emergencyWithdraw(amount) pulling wei out of the
// vault to the owner.
func (e *Executor) EmergencyWithdraw(ctx context.Context, amountETH string) (*TxResult, error) {
	amount, err := ParsePositiveUnits(amountETH)
	if err != nil {
		return nil, err
	}
	return e.submit(ctx, "emergencyWithdraw", nil, amount)
}

func (e *Executor) submit(ctx context.Context, method string, value *big.Int, args ...any) (*TxResult, error) {
	data, err := e.contract.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	// The wei amount reported back: attached value for payable calls,
	// otherwise the single scaled argument.
	reported := value
	if reported == nil && len(args) == 1 {
		if v, ok := args[0].(*big.Int); ok {
			reported = v
		}
	}

	receipt, err := e.backend.SendAndWait(ctx, e.contract.Address, data, value)
	if err != nil {
		metrics.AdminTxTotal.WithLabelValues(method, "error").Inc()
		return nil, err
	}
	metrics.AdminTxTotal.WithLabelValues(method, strconv.FormatUint(receipt.Status, 10)).Inc()
	e.log.Info().
		Str("action", method).
		Str("tx", receipt.TxHash.Hex()).
		Uint64("status", receipt.Status).
		Msg("admin transaction mined")

	res := &TxResult{
		Action: method,
		TxHash: receipt.TxHash.Hex(),
		Status: receipt.Status,
	}
	if reported != nil {
		res.AmountWei = reported.String()
	}
	return res, nil
}
