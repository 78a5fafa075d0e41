package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/utils"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// WalletResponse reports the current wallet balance
type WalletResponse struct {
	Balance string `json:"balance"`
}

// BalanceReader exposes the wallet balance
type BalanceReader interface {
	Balance(ctx context.Context) decimal.Decimal
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleWallet reports the balance with two fractional digits
func HandleWallet(wallet BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balance := wallet.Balance(r.Context())
		respondJSON(w, http.StatusOK, WalletResponse{Balance: utils.FormatMoney(balance)})
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error(LogMsgEncodeResponseFailed, "error", err)
	}
}
