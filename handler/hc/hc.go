package hc

import (
	"net/http"
	"time"

	"dsc/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

var boot = time.Now()

// Handle reports liveness together with version and uptime.
func Handle(version string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)

	r.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(boot).Truncate(time.Millisecond).String(),
		})
	}))

	return r
}
