package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AtulCoder09/Antigravity-AQI-System/api/middleware"
	"github.com/AtulCoder09/Antigravity-AQI-System/api/resources"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/hub"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(h *hub.Hub, maxMessageSize int64) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(h, maxMessageSize),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.Use(middleware.RequestID)

	// API version prefix
	api := r.router.PathPrefix("/v1").Subrouter()

	// Public routes
	api.HandleFunc("/health", r.resources.System.HealthCheck).Methods(http.MethodGet)
	api.HandleFunc("/score", r.resources.System.ScorePreview).Methods(http.MethodGet)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Duplex streams
	r.router.HandleFunc("/ws/edge-node", r.resources.Streams.EdgeNode)
	r.router.HandleFunc("/ws/dashboard", r.resources.Streams.Dashboard)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
