package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
)

func liquidateHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID      string `json:"user"`
			AssetID     string `json:"asset"`
			TargetID    string `json:"target"`
			DebtToCover string `json:"debt_to_cover"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		cover, err := amount(params.DebtToCover)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := engineSrv.Liquidate(r.Context(), params.UserID, params.AssetID, params.TargetID, cover); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}
