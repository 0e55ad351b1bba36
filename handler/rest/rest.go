package rest

import (
	"math/big"
	"net/http"

	"dsc/core"
	"dsc/handler/render"
	"dsc/pkg/number"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

// Handle handle restful apis
func Handle(
	cfg *core.Config,
	engineSrv core.IEngineService,
	walletSrv core.IWalletService,
	eventStore core.IEventStore,
) http.Handler {
	r := chi.NewRouter()

	r.Post("/deposit", depositHandler(engineSrv))
	r.Post("/deposit-mint", depositAndMintHandler(engineSrv))
	r.Post("/redeem", redeemHandler(engineSrv))
	r.Post("/redeem-burn", redeemForDscHandler(engineSrv))
	r.Post("/mint", mintHandler(engineSrv))
	r.Post("/burn", burnHandler(engineSrv))
	r.Post("/liquidate", liquidateHandler(engineSrv))

	r.Get("/accounts/{user}", accountHandler(engineSrv))
	r.Get("/assets", assetsHandler(engineSrv))
	r.Get("/value", usdValueHandler(engineSrv))
	r.Get("/amount", tokenAmountHandler(engineSrv))
	r.Get("/events", eventsHandler(eventStore))

	r.Post("/wallets/credit", creditHandler(cfg, walletSrv))
	r.Get("/wallets/{user}", walletHandler(engineSrv, walletSrv))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, core.ErrUnknown)
	})

	return r
}

// amount parses a positive decimal amount into 18 decimal fixed point.
func amount(v string) (*big.Int, error) {
	d, err := decimal.NewFromString(v)
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		return nil, core.ErrInvalidAmount
	}

	return number.WadFromDecimal(d), nil
}

func renderErr(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if code := core.CodeOf(err); code == core.ErrUnknown {
		status = http.StatusInternalServerError
	}

	render.Error(w, status, int(core.CodeOf(err)), err)
}
