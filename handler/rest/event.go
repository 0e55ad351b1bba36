package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/render"

	"github.com/spf13/cast"
)

func eventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromID := cast.ToUint64(r.URL.Query().Get("from"))
		limit := cast.ToInt(r.URL.Query().Get("limit"))

		events, err := eventStore.List(r.Context(), fromID, limit)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"events": events})
	}
}
