package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/render"
	"dsc/handler/views"
	"dsc/pkg/number"
)

func assetsHandler(engineSrv core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets := engineSrv.CollateralAssets()

		view := views.AssetList{
			Assets:          make([]views.Asset, 0, len(assets)),
			MinHealthFactor: number.DecimalFromWad(engineSrv.MinHealthFactor()),
		}

		for _, asset := range assets {
			view.Assets = append(view.Assets, views.NewAsset(asset))
		}

		render.JSON(w, view)
	}
}
