package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *TranslateHandler) {
	r.With(httputil.RecoverMiddleware).Get("/", h.Index)

	// the form is publicly reachable, so throttle synthesis per IP
	r.With(
		httputil.RecoverMiddleware,
		httprate.LimitByIP(10, time.Minute),
	).Post("/translate", h.Translate)

	r.With(httputil.RecoverMiddleware).Get("/audio/{name}", h.Audio)
}
