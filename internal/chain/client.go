package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"go.uber.org/ratelimit"

	"github.com/olympusreit/gateway/internal/metrics"
)

// Client wraps a single node connection behind a rate limiter and bounded
// retry. All read traffic and the admin write path go through it.
type Client struct {
	ec       *ethclient.Client
	limiter  ratelimit.Limiter
	attempts int
	chainID  *big.Int
	key      *ecdsa.PrivateKey
	from     common.Address
	log      zerolog.Logger
}

// Options for Dial. PKHex may be empty: the client then serves reads only.
type Options struct {
	RPCURL     string
	PKHex      string
	RatePerSec int
	Attempts   int
	Log        zerolog.Logger
}

// Dial connects to the node, resolves the chain ID and, when a key is
// given, derives the sender address.
func Dial(ctx context.Context, opt Options) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, opt.RPCURL)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		return nil, &ConnectionError{Op: "chainId", Err: err}
	}
	if opt.RatePerSec <= 0 {
		opt.RatePerSec = 20
	}
	if opt.Attempts <= 0 {
		opt.Attempts = 3
	}
	c := &Client{
		ec:       ec,
		limiter:  ratelimit.New(opt.RatePerSec),
		attempts: opt.Attempts,
		chainID:  chainID,
		log:      opt.Log,
	}
	if h := strings.TrimSpace(opt.PKHex); h != "" {
		key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(h, "0x"))
		if err != nil {
			return nil, err
		}
		c.key = key
		c.from = gethcrypto.PubkeyToAddress(key.PublicKey)
	}
	return c, nil
}

func (c *Client) Close() { c.ec.Close() }

func (c *Client) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

// SignerConfigured reports whether the admin write path is usable.
func (c *Client) SignerConfigured() bool { return c.key != nil }

// Sender is the address derived from the configured signing key.
func (c *Client) Sender() common.Address { return c.from }

// CallView performs eth_call with small exponential backoff.
func (c *Client) CallView(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{To: &to, Data: data}
	backoff := 200 * time.Millisecond
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		c.limiter.Take()
		metrics.RPCCallsTotal.WithLabelValues("call").Inc()
		ret, err := c.ec.CallContract(ctx, msg, nil)
		if err == nil {
			return ret, nil
		}
		lastErr = err
		if isRevert(err) {
			break
		}
		if attempt < c.attempts {
			time.Sleep(backoff)
			if isRateLimitError(err) {
				backoff *= 2
			}
		}
	}
	return nil, classify("call", lastErr)
}

// NativeBalance returns the native-currency balance of an account.
func (c *Client) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	c.limiter.Take()
	metrics.RPCCallsTotal.WithLabelValues("balance").Inc()
	bal, err := c.ec.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, &ConnectionError{Op: "getBalance", Err: err}
	}
	return bal, nil
}

// BlockNumber returns the current head number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	c.limiter.Take()
	metrics.RPCCallsTotal.WithLabelValues("blockNumber").Inc()
	n, err := c.ec.BlockNumber(ctx)
	if err != nil {
		return 0, &ConnectionError{Op: "blockNumber", Err: err}
	}
	return n, nil
}

// SendAndWait signs an EIP-1559 transaction with the server key, submits it
// and blocks until it is mined. Returns the receipt; a mined-but-reverted
// transaction is still a successful submission and is reported through the
// receipt status, not an error.
func (c *Client) SendAndWait(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Receipt, error) {
	if c.key == nil {
		return nil, ErrNoSigner
	}
	if value == nil {
		value = new(big.Int)
	}

	c.limiter.Take()
	nonce, err := c.ec.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, &ConnectionError{Op: "pendingNonce", Err: err}
	}
	tip, err := c.ec.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, &ConnectionError{Op: "suggestTip", Err: err}
	}
	head, err := c.ec.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, &ConnectionError{Op: "header", Err: err}
	}
	if head.BaseFee == nil {
		return nil, &ConnectionError{Op: "header", Err: errors.New("no baseFee (pre-1559 chain?)")}
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	msg := ethereum.CallMsg{From: c.from, To: &to, Value: value, Data: data}
	gas, err := c.ec.EstimateGas(ctx, msg)
	if err != nil {
		return nil, classify("estimateGas", err)
	}
	gas += gas / 5 // headroom over the estimate

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		Gas:       gas,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		To:        &to,
		Value:     new(big.Int).Set(value),
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, err
	}

	metrics.RPCCallsTotal.WithLabelValues("sendTx").Inc()
	if err := c.ec.SendTransaction(ctx, signed); err != nil {
		return nil, classify("sendTransaction", err)
	}
	c.log.Info().Str("tx", signed.Hash().Hex()).Uint64("nonce", nonce).Msg("transaction submitted, waiting for inclusion")

	receipt, err := bind.WaitMined(ctx, c.ec, signed)
	if err != nil {
		return nil, &ConnectionError{Op: "waitMined", Err: err}
	}
	return receipt, nil
}
