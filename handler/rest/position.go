package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
)

type positionParams struct {
	UserID     string `json:"user"`
	AssetID    string `json:"asset"`
	Amount     string `json:"amount"`
	MintAmount string `json:"mint_amount"`
	BurnAmount string `json:"burn_amount"`
}

func depositHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.DepositCollateral(r.Context(), params.UserID, params.AssetID, qty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func depositAndMintHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		mintQty, err := amount(params.MintAmount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.DepositCollateralAndMintDsc(r.Context(), params.UserID, params.AssetID, qty, mintQty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func redeemHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.RedeemCollateral(r.Context(), params.UserID, params.AssetID, qty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func redeemForDscHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		burnQty, err := amount(params.BurnAmount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.RedeemCollateralForDsc(r.Context(), params.UserID, params.AssetID, qty, burnQty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func mintHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.MintDsc(r.Context(), params.UserID, qty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func burnHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params positionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		qty, err := amount(params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.BurnDsc(r.Context(), params.UserID, qty); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}
