package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylediscover/server/internal/discovery/usecase/query"
	"github.com/stylediscover/server/internal/quiz"
	"github.com/stylediscover/server/pkg/logger"
)

// DiscoveryHandler handles HTTP requests for catalog browsing using CQRS pattern
type DiscoveryHandler struct {
	browseHandler *query.BrowseOutfitsHandler
	feedHandler   *query.FeedHandler
	getHandler    *query.GetOutfitHandler
	statsHandler  *query.GetStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	catalogSize    prometheus.Gauge
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(
	browseHandler *query.BrowseOutfitsHandler,
	feedHandler *query.FeedHandler,
	getHandler *query.GetOutfitHandler,
	statsHandler *query.GetStatsHandler,
) *DiscoveryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_service_requests_total",
			Help: "Total number of requests to discovery service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_service_request_duration_seconds",
			Help:    "Duration of discovery service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "discovery_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "discovery_service_catalog_size",
		Help: "Number of outfits in the loaded catalog snapshot",
	})

	prometheus.MustRegister(requestCounter, requestLatency, requestSummary, catalogSize)

	return &DiscoveryHandler{
		browseHandler:  browseHandler,
		feedHandler:    feedHandler,
		getHandler:     getHandler,
		statsHandler:   statsHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		catalogSize:    catalogSize,
	}
}

// SetCatalogSize records the snapshot size gauge
func (h *DiscoveryHandler) SetCatalogSize(n int) {
	h.catalogSize.Set(float64(n))
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// responseWriter captures the status code for metrics
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *DiscoveryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *DiscoveryHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/outfits", h.metricsMiddleware("/api/outfits", h.BrowseOutfits)).Methods("GET")
	router.HandleFunc("/api/outfits/feed", h.metricsMiddleware("/api/outfits/feed", h.Feed)).Methods("GET")
	router.HandleFunc("/api/outfits/stats", h.metricsMiddleware("/api/outfits/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/outfits/{id}", h.metricsMiddleware("/api/outfits/{id}", h.GetOutfit)).Methods("GET")
	router.HandleFunc("/api/quiz/questions", h.metricsMiddleware("/api/quiz/questions", h.GetQuestions)).Methods("GET")
}

// browseQuery builds the usecase query from URL parameters. Absent
// parameters leave their dimension unconstrained.
func browseQuery(r *http.Request) query.BrowseOutfitsQuery {
	params := r.URL.Query()

	q := query.BrowseOutfitsQuery{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Style:    params.Get("style"),
		Season:   params.Get("season"),
		Occasion: params.Get("occasion"),
	}

	if colors := params.Get("colors"); colors != "" {
		for _, c := range strings.Split(colors, ",") {
			if c = strings.TrimSpace(c); c != "" {
				q.Colors = append(q.Colors, c)
			}
		}
	}

	if raw := params.Get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &v
		}
	}
	if raw := params.Get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &v
		}
	}

	if params.Get("quiz") == "1" || params.Get("quiz") == "true" {
		q.Quiz = true
		q.UserID = userIDFromRequest(r)
	}

	return q
}

// userIDFromRequest reads the identity header forwarded by the gateway or
// set by the auth middleware; zero means anonymous.
func userIDFromRequest(r *http.Request) uint {
	if raw := r.Header.Get("X-User-ID"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return uint(id)
		}
	}
	return 0
}

// BrowseOutfits handles GET /api/outfits
func (h *DiscoveryHandler) BrowseOutfits(w http.ResponseWriter, r *http.Request) {
	outfits, err := h.browseHandler.Handle(r.Context(), browseQuery(r))
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to browse outfits")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	// An empty result set is a valid state, not an error; clients render
	// a "no matches" affordance.
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"outfits": outfits,
			"count":   len(outfits),
		},
	})
}

// Feed handles GET /api/outfits/feed
func (h *DiscoveryHandler) Feed(w http.ResponseWriter, r *http.Request) {
	outfits, err := h.feedHandler.Handle(r.Context(), query.FeedQuery{BrowseOutfitsQuery: browseQuery(r)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build feed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"outfits": outfits,
			"count":   len(outfits),
		},
	})
}

// GetOutfit handles GET /api/outfits/{id}
func (h *DiscoveryHandler) GetOutfit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid outfit ID",
		})
		return
	}

	outfit, err := h.getHandler.Handle(r.Context(), query.GetOutfitQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    outfit,
	})
}

// GetStats handles GET /api/outfits/stats
func (h *DiscoveryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetQuestions handles GET /api/quiz/questions
func (h *DiscoveryHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    quiz.Questions,
	})
}

// RegisterHealthCheck adds a health check endpoint
func (h *DiscoveryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Discovery service is healthy",
		})
	}).Methods("GET")
}
