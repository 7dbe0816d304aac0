package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jandkbailey21/FDG-Discord-Bot/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerSearchHandler(ctrl, render))
		r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
	})

	r.Get("/pool", poolHandler(ctrl, render))
	r.Get("/ownership", ownershipHandler(ctrl, render))
	r.Get("/rosters/{team}", rosterHandler(ctrl, render))

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", listTransactionsHandler(ctrl, render))
		// With ?mode=validate the transaction is checked but not committed.
		r.Post("/", submitTransactionHandler(ctrl, render))
	})

	r.Route("/waivers", func(r chi.Router) {
		r.Post("/run", runWaiversHandler(ctrl, render))
		r.Post("/requests", submitWaiverRequestsHandler(ctrl, render))
		r.Get("/requests/{cycleID}", getWaiverRequestsHandler(ctrl, render))
		r.Get("/awards/{cycleID}", getWaiverAwardsHandler(ctrl, render))
	})

	r.Get("/standings/{cycleID}", standingsHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("fdg", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                                // Set a longer timeout for /admin actions

		r.Post("/players", forceUpdatePlayers(ctrl, render))
	})

	return r
}
