package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
	"dsc/pkg/number"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

// creditHandler tops up a user wallet from the deposit rail. Admin only.
func creditHandler(cfg *core.Config, walletSrv core.IWalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AdminID string `json:"admin"`
			UserID  string `json:"user"`
			AssetID string `json:"asset"`
			Amount  string `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if !cfg.IsAdmin(params.AdminID) {
			renderErr(w, core.ErrOperationForbidden)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := walletSrv.Credit(r.Context(), params.UserID, params.AssetID, qty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func walletHandler(engineSrv core.IEngineService, walletSrv core.IWalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")

		balances := make(map[string]decimal.Decimal)
		for _, asset := range engineSrv.CollateralAssets() {
			balance, err := walletSrv.Balance(r.Context(), userID, asset.AssetID)
			if err != nil {
				renderErr(w, err)
				return
			}

			balances[asset.AssetID] = number.DecimalFromWad(balance)
		}

		render.JSON(w, render.H{
			"user":     userID,
			"balances": balances,
		})
	}
}
