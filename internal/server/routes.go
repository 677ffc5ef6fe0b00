package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SuperOrca/sbshards/pkg/httpx/reply"
	"github.com/SuperOrca/sbshards/pkg/logx"
	"github.com/SuperOrca/sbshards/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/shards", handler(s.getV1Shards))

		r.Route("/rankings", func(r chi.Router) {
			r.Get("/", handler(s.getV1Rankings))
			r.Post("/refresh", handler(s.postV1RankingsRefresh))
			r.Put("/view", handler(s.putV1RankingsView))
			r.Put("/sort", handler(s.putV1RankingsSort))
			r.Delete("/sort", handler(s.deleteV1RankingsSort))
		})

		r.Route("/exclusions", func(r chi.Router) {
			r.Get("/", handler(s.getV1Exclusions))
			r.Delete("/", handler(s.deleteV1Exclusions))
			r.Post("/toggle", handler(s.postV1ExclusionsToggle))
			r.Post("/filtered", handler(s.postV1ExclusionsFiltered))
		})

		r.Get("/export.csv", handler(s.getV1Export))
		r.Get("/stats", handler(s.getV1Stats))
	})
}

// Handler builds the full router with the middleware chain.
func (s Server) Handler(logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Logging(logx.NewSensitiveDataMasker(), logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
