package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olympusreit/gateway/internal/reit"
)

// NodeStatus is what the health endpoint needs from the node client.
type NodeStatus interface {
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID() *big.Int
}

// Handlers holds the wired-up gateway components behind the HTTP surface.
type Handlers struct {
	node     NodeStatus
	reader   *reit.Reader
	quoter   *reit.Quoter
	builder  *reit.Builder
	executor *reit.Executor
}

func NewHandlers(node NodeStatus, reader *reit.Reader, quoter *reit.Quoter, builder *reit.Builder, executor *reit.Executor) *Handlers {
	return &Handlers{node: node, reader: reader, quoter: quoter, builder: builder, executor: executor}
}

// DecimalField accepts a JSON string or bare number, normalized to a string.
// The dashboard historically sent either.
type DecimalField string

func (d *DecimalField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = DecimalField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*d = DecimalField(n.String())
		return nil
	}
	return errors.New("expected string or number")
}

// ---------- health ----------

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	block, err := h.node.BlockNumber(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Health check failed", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"chainId":     h.node.ChainID().String(),
		"blockNumber": block,
	})
}

// ---------- public reads ----------

func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.reader.Info(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handlers) Balance(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	balance, err := h.reader.Balance(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"address":       address,
		"balanceTokens": balance,
	})
}

func (h *Handlers) WithdrawableRent(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	pending, err := h.reader.WithdrawableRent(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"address":             address,
		"withdrawableRentEth": pending,
	})
}

func (h *Handlers) CheckSolvency(w http.ResponseWriter, r *http.Request) {
	solvency, err := h.reader.CheckSolvency(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solvency)
}

// ---------- market quotes ----------

type quoteResponse struct {
	AmountTokens  string `json:"amountTokens"`
	CostWei       string `json:"costWei,omitempty"`
	CostEth       string `json:"costEth,omitempty"`
	RefundWei     string `json:"refundWei,omitempty"`
	RefundEth     string `json:"refundEth,omitempty"`
	SharePriceWei string `json:"sharePriceWei"`
	SharePriceEth string `json:"sharePriceEth"`
}

func (h *Handlers) QuoteBuy(w http.ResponseWriter, r *http.Request) {
	amount := r.URL.Query().Get("amountTokens")
	q, err := h.quoter.Buy(r.Context(), amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		AmountTokens:  amount,
		CostWei:       q.Value.String(),
		CostEth:       reit.FormatUnits(q.Value),
		SharePriceWei: q.SharePrice.String(),
		SharePriceEth: reit.FormatUnits(q.SharePrice),
	})
}

func (h *Handlers) QuoteSell(w http.ResponseWriter, r *http.Request) {
	amount := r.URL.Query().Get("amountTokens")
	q, err := h.quoter.Sell(r.Context(), amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		AmountTokens:  amount,
		RefundWei:     q.Value.String(),
		RefundEth:     reit.FormatUnits(q.Value),
		SharePriceWei: q.SharePrice.String(),
		SharePriceEth: reit.FormatUnits(q.SharePrice),
	})
}

// ---------- unsigned transaction builders ----------

type amountTokensBody struct {
	AmountTokens DecimalField `json:"amountTokens"`
}

type txHuman struct {
	AmountTokens  string `json:"amountTokens"`
	CostEth       string `json:"costEth,omitempty"`
	SharePriceEth string `json:"sharePriceEth,omitempty"`
}

type txResponse struct {
	*reit.UnsignedTx
	Human *txHuman `json:"human,omitempty"`
}

func (h *Handlers) BuildBuyShares(w http.ResponseWriter, r *http.Request) {
	var body amountTokensBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}
	tx, q, err := h.builder.BuyShares(r.Context(), string(body.AmountTokens))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txResponse{
		UnsignedTx: tx,
		Human: &txHuman{
			AmountTokens:  string(body.AmountTokens),
			CostEth:       reit.FormatUnits(q.Value),
			SharePriceEth: reit.FormatUnits(q.SharePrice),
		},
	})
}

func (h *Handlers) BuildSellShares(w http.ResponseWriter, r *http.Request) {
	var body amountTokensBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}
	tx, err := h.builder.SellShares(r.Context(), string(body.AmountTokens))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txResponse{
		UnsignedTx: tx,
		Human:      &txHuman{AmountTokens: string(body.AmountTokens)},
	})
}

func (h *Handlers) BuildClaimRent(w http.ResponseWriter, r *http.Request) {
	tx, err := h.builder.ClaimRent()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txResponse{UnsignedTx: tx})
}

// ---------- admin ----------

type adminAmountBody struct {
	AmountEth   DecimalField `json:"amountEth"`
	AmountETH   DecimalField `json:"amountETH"`
	AmountWei   string       `json:"amountWei"`
	NewPriceEth DecimalField `json:"newPriceEth"`
	NewPriceETH DecimalField `json:"newPriceETH"`
	NewPriceWei string       `json:"newPriceWei"`
}

// ethAmount resolves the one numeric argument every admin call takes,
// accepting the historical field spellings and the raw-wei variants.
func (b adminAmountBody) ethAmount() (string, error) {
	for _, s := range []string{string(b.AmountEth), string(b.AmountETH), string(b.NewPriceEth), string(b.NewPriceETH)} {
		if s != "" {
			return s, nil
		}
	}
	for _, s := range []string{b.AmountWei, b.NewPriceWei} {
		if s != "" {
			wei, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return "", &reit.InvalidInputError{Reason: "wei amount is not an integer"}
			}
			return reit.FormatUnits(wei), nil
		}
	}
	return "", &reit.InvalidInputError{Reason: "amount field is required in body"}
}

func (h *Handlers) adminCall(w http.ResponseWriter, r *http.Request,
	run func(ctx context.Context, amountETH string) (*reit.TxResult, error)) {
	if !h.executor.Ready() {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Admin private key not configured on server"})
		return
	}
	var body adminAmountBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}
	amount, err := body.ethAmount()
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := run(r.Context(), amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) AdminDistributeRent(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.executor.DistributeRent)
}

func (h *Handlers) AdminInjectLiquidity(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.executor.InjectLiquidity)
}

func (h *Handlers) AdminAdjustSharePrice(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.executor.AdjustSharePrice)
}

func (h *Handlers) AdminEmergencyWithdraw(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.executor.EmergencyWithdraw)
}
