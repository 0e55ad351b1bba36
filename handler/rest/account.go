package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/render"
	"dsc/handler/views"
	"dsc/pkg/number"

	"github.com/go-chi/chi"
)

func accountHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")

		debt, collateralValue, err := engineSrv.AccountInformation(r.Context(), userID)
		if err != nil {
			renderErr(w, err)
			return
		}

		score, err := engineSrv.HealthFactor(r.Context(), userID)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, views.NewAccount(userID, debt, collateralValue, score))
	}
}

func usdValueHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := r.URL.Query().Get("asset")

		qty, err := amount(r.URL.Query().Get("amount"))
		if err != nil {
			renderErr(w, err)
			return
		}

		value, err := engineSrv.UsdValue(r.Context(), assetID, qty)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{
			"asset": assetID,
			"value": number.DecimalFromWad(value),
		})
	}
}

func tokenAmountHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := r.URL.Query().Get("asset")

		value, err := amount(r.URL.Query().Get("value"))
		if err != nil {
			renderErr(w, err)
			return
		}

		qty, err := engineSrv.TokenAmountFromUsd(r.Context(), assetID, value)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{
			"asset":  assetID,
			"amount": number.DecimalFromWad(qty),
		})
	}
}
