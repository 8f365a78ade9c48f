package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/olympusreit/gateway/internal/chain"
	"github.com/olympusreit/gateway/internal/reit"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP codes. Every failure becomes
// a JSON body; nothing propagates as a bare 500 page.
func writeError(w http.ResponseWriter, err error) {
	var invalid *reit.InvalidInputError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: invalid.Reason})
		return
	}
	if errors.Is(err, chain.ErrNoSigner) {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Admin private key not configured on server"})
		return
	}
	var callErr *chain.CallError
	if errors.As(err, &callErr) {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "contract call failed", Details: callErr.Reason})
		return
	}
	var connErr *chain.ConnectionError
	if errors.As(err, &connErr) {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "node request failed", Details: connErr.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}
