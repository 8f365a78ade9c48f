package reit

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// Backend is the read surface of the node client the proxy needs.
type Backend interface {
	CallView(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
}

// ContractInfo is the dashboard snapshot. All monetary fields are
// pre-formatted decimal strings.
type ContractInfo struct {
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	SharePriceEth     string `json:"sharePriceEth"`
	SharePriceWei     string `json:"sharePriceWei"`
	TotalSupplyTokens string `json:"totalSupplyTokens"`
	MaxSupplyTokens   string `json:"maxSupplyTokens"`
	PropertyAddress   string `json:"propertyAddress"`
	Owner             string `json:"owner"`
	VaultBalanceEth   string `json:"vaultBalanceEth"`
}

// Solvency is the audit view: a flag plus the signed deficit/surplus.
type Solvency struct {
	IsSolvent           bool   `json:"isSolvent"`
	DeficitOrSurplusEth string `json:"deficitOrSurplusEth"`
}

// Reader maps read requests to view calls and formats the results. The info
// snapshot is cached whole for a bounded interval to keep node load flat no
// matter how often the dashboard polls.
type Reader struct {
	backend  Backend
	contract *Contract
	ttl      time.Duration
	now      func() time.Time

	mu      sync.Mutex
	cached  *ContractInfo
	expires time.Time
}

func NewReader(backend Backend, contract *Contract, ttl time.Duration) *Reader {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Reader{backend: backend, contract: contract, ttl: ttl, now: time.Now}
}

// Info returns the contract snapshot, serving the cached copy while it is
// fresh. The upstream fields are fetched concurrently; the node client's
// rate limiter is the only pacing.
func (r *Reader) Info(ctx context.Context) (*ContractInfo, error) {
	r.mu.Lock()
	if r.cached != nil && r.now().Before(r.expires) {
		snap := r.cached
		r.mu.Unlock()
		return snap, nil
	}
	r.mu.Unlock()

	info := &ContractInfo{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info.Name, err = r.callString(gctx, "name")
		return
	})
	g.Go(func() (err error) {
		info.Symbol, err = r.callString(gctx, "symbol")
		return
	})
	g.Go(func() error {
		price, err := r.callBig(gctx, "sharePrice")
		if err != nil {
			return err
		}
		info.SharePriceWei = price.String()
		info.SharePriceEth = FormatUnits(price)
		return nil
	})
	g.Go(func() error {
		supply, err := r.callBig(gctx, "totalSupply")
		if err != nil {
			return err
		}
		info.TotalSupplyTokens = FormatUnits(supply)
		return nil
	})
	g.Go(func() error {
		max, err := r.callBig(gctx, "maxSupply")
		if err != nil {
			return err
		}
		info.MaxSupplyTokens = FormatUnits(max)
		return nil
	})
	g.Go(func() (err error) {
		info.PropertyAddress, err = r.callString(gctx, "propertyAddress")
		return
	})
	g.Go(func() error {
		owner, err := r.callAddress(gctx, "owner")
		if err != nil {
			return err
		}
		info.Owner = owner.Hex()
		return nil
	})
	g.Go(func() error {
		vault, err := r.backend.NativeBalance(gctx, r.contract.Address)
		if err != nil {
			return err
		}
		info.VaultBalanceEth = FormatUnits(vault)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cached = info
	r.expires = r.now().Add(r.ttl)
	r.mu.Unlock()
	return info, nil
}

// Balance returns the formatted share balance of an account.
func (r *Reader) Balance(ctx context.Context, address string) (string, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return "", err
	}
	bal, err := r.callBig(ctx, "balanceOf", addr)
	if err != nil {
		return "", err
	}
	return FormatUnits(bal), nil
}

// WithdrawableRent returns the formatted pending rent of an account.
func (r *Reader) WithdrawableRent(ctx context.Context, address string) (string, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return "", err
	}
	pending, err := r.callBig(ctx, "withdrawableRentOf", addr)
	if err != nil {
		return "", err
	}
	return FormatUnits(pending), nil
}

// CheckSolvency returns the contract's own audit of vault vs. obligations.
func (r *Reader) CheckSolvency(ctx context.Context) (*Solvency, error) {
	out, err := r.call(ctx, "checkSolvency")
	if err != nil {
		return nil, err
	}
	isSolvent, ok1 := out[0].(bool)
	delta, ok2 := out[1].(*big.Int)
	if !ok1 || !ok2 {
		return nil, errInvalid("checkSolvency returned unexpected types")
	}
	return &Solvency{IsSolvent: isSolvent, DeficitOrSurplusEth: FormatUnits(delta)}, nil
}

// SharePrice returns the raw fixed-point share price, uncached: quotes must
// track the live value.
func (r *Reader) SharePrice(ctx context.Context) (*big.Int, error) {
	return r.callBig(ctx, "sharePrice")
}

func (r *Reader) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := r.contract.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	raw, err := r.backend.CallView(ctx, r.contract.Address, data)
	if err != nil {
		return nil, err
	}
	return r.contract.Unpack(method, raw)
}

func (r *Reader) callString(ctx context.Context, method string) (string, error) {
	out, err := r.call(ctx, method)
	if err != nil {
		return "", err
	}
	s, ok := out[0].(string)
	if !ok {
		return "", errInvalid("%s returned unexpected type", method)
	}
	return s, nil
}

func (r *Reader) callBig(ctx context.Context, method string, args ...any) (*big.Int, error) {
	out, err := r.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errInvalid("%s returned unexpected type", method)
	}
	return v, nil
}

func (r *Reader) callAddress(ctx context.Context, method string) (common.Address, error) {
	out, err := r.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	a, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errInvalid("%s returned unexpected type", method)
	}
	return a, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errInvalid("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}
