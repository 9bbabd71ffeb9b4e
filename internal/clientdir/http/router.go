package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/harborlane/clientdir/internal/clientdir/service"
	"github.com/harborlane/clientdir/internal/clientdir/store"
	"github.com/harborlane/clientdir/pkg/httpx"
	"github.com/harborlane/clientdir/pkg/slogx"

	_ "github.com/harborlane/clientdir/api/clientdir" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	ClientService *service.ClientService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Directory API
//	@version		0.1.0
//	@description	CRUD API for client records. Every response body is a uniform
//	@description	envelope {status, message, data, metadata}; error variants omit
//	@description	data and carry stable reason codes under metadata.details.
//
//	@contact.name	Harborlane Team
//	@contact.url	https://github.com/harborlane/clientdir
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// Writes get a moderate per-IP limit, reads the public one
	create := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	get := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	del := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	// Collection endpoints accept both /clients and /clients/
	r.Mux.Handle("POST /clients", create)
	r.Mux.Handle("POST /clients/{$}", create)
	r.Mux.Handle("GET /clients", list)
	r.Mux.Handle("GET /clients/{$}", list)

	r.Mux.Handle("GET /clients/{id}", get)
	r.Mux.Handle("PUT /clients/{id}", update)
	r.Mux.Handle("DELETE /clients/{id}", del)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
