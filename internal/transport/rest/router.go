package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// RouterConfig collects the pieces NewRouter mounts. Nil handlers are
// skipped so tests can build partial routers.
type RouterConfig struct {
	Forms   *FormHandler
	Health  *HealthHandler
	Metrics http.Handler
	// MetricsPath defaults to /metrics.
	MetricsPath string
	// Write wraps every mutating form route.
	Write func(http.Handler) http.Handler
	// Instrument is installed with Router.Use so it sees route templates.
	Instrument func(http.Handler) http.Handler
}

// NewRouter builds the HTTP routing table: probes and metrics at the root,
// the forms API under /api.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, domain.KindNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Kind: "method_not_allowed", Error: "method not allowed"})
	})

	if cfg.Instrument != nil {
		r.Use(mux.MiddlewareFunc(cfg.Instrument))
	}

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.Metrics).Methods(http.MethodGet)
	}
	if cfg.Forms != nil {
		// Subrouters answer unmatched requests themselves, so they need the
		// JSON handlers too.
		api := r.PathPrefix("/api").Subrouter()
		api.NotFoundHandler = r.NotFoundHandler
		api.MethodNotAllowedHandler = r.MethodNotAllowedHandler
		cfg.Forms.Register(api, cfg.Write)
	}

	return r
}
