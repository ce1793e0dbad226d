package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylediscover/server/internal/prefs/usecase/command"
	"github.com/stylediscover/server/internal/prefs/usecase/query"
	"github.com/stylediscover/server/pkg/logger"
)

// PrefsHandler handles HTTP requests for shopper preferences using CQRS pattern
type PrefsHandler struct {
	toggleFavoriteHandler *command.ToggleFavoriteHandler
	addToCartHandler      *command.AddToCartHandler
	removeFromCartHandler *command.RemoveFromCartHandler
	submitQuizHandler     *command.SubmitQuizHandler
	saveSelectionsHandler *command.SaveQuizSelectionsHandler

	getPreferencesHandler *query.GetPreferencesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPrefsHandler creates a new preferences handler
func NewPrefsHandler(
	toggleFavoriteHandler *command.ToggleFavoriteHandler,
	addToCartHandler *command.AddToCartHandler,
	removeFromCartHandler *command.RemoveFromCartHandler,
	submitQuizHandler *command.SubmitQuizHandler,
	saveSelectionsHandler *command.SaveQuizSelectionsHandler,
	getPreferencesHandler *query.GetPreferencesHandler,
) *PrefsHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prefs_service_requests_total",
			Help: "Total number of preference requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prefs_service_request_duration_seconds",
			Help:    "Duration of preference requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter, requestLatency)

	return &PrefsHandler{
		toggleFavoriteHandler: toggleFavoriteHandler,
		addToCartHandler:      addToCartHandler,
		removeFromCartHandler: removeFromCartHandler,
		submitQuizHandler:     submitQuizHandler,
		saveSelectionsHandler: saveSelectionsHandler,
		getPreferencesHandler: getPreferencesHandler,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
	}
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

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PrefsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *PrefsHandler) RegisterRoutes(router *mux.Router) {
	// All preference routes require an authenticated shopper
	router.HandleFunc("/api/preferences", h.metricsMiddleware("/api/preferences", AuthMiddleware(h.GetPreferences))).Methods("GET")
	router.HandleFunc("/api/favorites/{id}/toggle", h.metricsMiddleware("/api/favorites/{id}/toggle", AuthMiddleware(h.ToggleFavorite))).Methods("POST")
	router.HandleFunc("/api/cart/{id}", h.metricsMiddleware("/api/cart/{id}", AuthMiddleware(h.AddToCart))).Methods("POST")
	router.HandleFunc("/api/cart/{id}", h.metricsMiddleware("/api/cart/{id}", AuthMiddleware(h.RemoveFromCart))).Methods("DELETE")
	router.HandleFunc("/api/quiz/submit", h.metricsMiddleware("/api/quiz/submit", AuthMiddleware(h.SubmitQuiz))).Methods("POST")
	router.HandleFunc("/api/quiz/selections", h.metricsMiddleware("/api/quiz/selections", AuthMiddleware(h.SaveSelections))).Methods("PUT")
}

func outfitIDFromPath(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetPreferences handles GET /api/preferences
func (h *PrefsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.getPreferencesHandler.Handle(r.Context(), query.GetPreferencesQuery{
		UserID: userIDFromContext(r.Context()),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load preferences")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    prefs,
	})
}

// ToggleFavorite handles POST /api/favorites/{id}/toggle
func (h *PrefsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	outfitID, ok := outfitIDFromPath(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid outfit ID",
		})
		return
	}

	state, err := h.toggleFavoriteHandler.Handle(r.Context(), command.ToggleFavoriteCommand{
		UserID:   userIDFromContext(r.Context()),
		OutfitID: outfitID,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	_, favorited := state.Favorites[outfitID]
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"outfit_id": outfitID,
			"favorited": favorited,
		},
	})
}

// AddToCart handles POST /api/cart/{id}
func (h *PrefsHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	outfitID, ok := outfitIDFromPath(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid outfit ID",
		})
		return
	}

	state, err := h.addToCartHandler.Handle(r.Context(), command.AddToCartCommand{
		UserID:   userIDFromContext(r.Context()),
		OutfitID: outfitID,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Added to cart",
		Data: map[string]interface{}{
			"outfit_id": outfitID,
			"quantity":  state.Cart[outfitID],
		},
	})
}

// RemoveFromCart handles DELETE /api/cart/{id}
func (h *PrefsHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	outfitID, ok := outfitIDFromPath(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid outfit ID",
		})
		return
	}

	state, err := h.removeFromCartHandler.Handle(r.Context(), command.RemoveFromCartCommand{
		UserID:   userIDFromContext(r.Context()),
		OutfitID: outfitID,
	})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from cart",
		Data: map[string]interface{}{
			"outfit_id": outfitID,
			"quantity":  state.Cart[outfitID],
		},
	})
}

// SubmitQuiz handles POST /api/quiz/submit
func (h *PrefsHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []int `json:"answers"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.submitQuizHandler.Handle(r.Context(), command.SubmitQuizCommand{
		UserID:  userIDFromContext(r.Context()),
		Answers: req.Answers,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Quiz submission rejected")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quiz completed",
		Data:    result.Profile,
	})
}

// SaveSelections handles PUT /api/quiz/selections. The mobile picker sends
// all five dimensions; whole-field replacement, never a merge.
func (h *PrefsHandler) SaveSelections(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Categories []string `json:"categories"`
		Colors     []string `json:"colors"`
		Styles     []string `json:"styles"`
		Seasons    []string `json:"seasons"`
		Occasions  []string `json:"occasions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	state, err := h.saveSelectionsHandler.Handle(r.Context(), command.SaveQuizSelectionsCommand{
		UserID:     userIDFromContext(r.Context()),
		Categories: req.Categories,
		Colors:     req.Colors,
		Styles:     req.Styles,
		Seasons:    req.Seasons,
		Occasions:  req.Occasions,
	})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Selections saved",
		Data: map[string]interface{}{
			"quiz_completed": state.QuizCompleted,
		},
	})
}
