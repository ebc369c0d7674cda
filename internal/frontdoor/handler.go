package frontdoor

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bnema/zwr/internal/metrics"
	"github.com/bnema/zwr/internal/middleware"
)

// Options wires a Handler to its collaborators. Static and Shell are
// required; a nil Metrics records nothing.
type Options struct {
	Static  http.Handler
	Shell   http.Handler
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

// Handler is the front door http.Handler. It holds no per-request state.
type Handler struct {
	static  http.Handler
	shell   http.Handler
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

func NewHandler(opts Options) *Handler {
	return &Handler{
		static:  opts.Static,
		shell:   opts.Shell,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.EscapedPath()
	route := Classify(path)
	h.metrics.ObserveRoute(route.String())

	switch route {
	case RouteStatic:
		h.static.ServeHTTP(w, r)
	case RouteShell:
		h.shell.ServeHTTP(w, r)
	case RouteReject:
		http.NotFound(w, r)
	default:
		h.redirect(w, r, path)
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	logger := h.logger.With().Str("request_id", middleware.RequestIDFromContext(r.Context())).Logger()

	target, err := PlanRedirect(IncomingRequest{
		Path:   path,
		Host:   r.Host,
		Header: r.Header,
	})
	if err != nil {
		h.metrics.ObserveMissingHost()
		logger.Debug().Str("origin", path).Msg("Redirect candidate without host")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, MissingHostMessage)
		return
	}

	uri, err := target.URI()
	if err != nil {
		h.metrics.ObserveRedirectFailure()
		logger.Error().Err(err).Str("origin", target.Origin).Msg("Failed to build redirect")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, target.SessionCookie())
	w.Header().Set("Location", uri)
	w.WriteHeader(http.StatusFound)

	logger.Info().
		Str("origin", target.Origin).
		Str("target", uri).
		Msgf("Redirecting %s to %s", target.Origin, uri)
}
