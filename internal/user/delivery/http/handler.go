package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylediscover/server/internal/user/usecase/command"
	"github.com/stylediscover/server/internal/user/usecase/query"
	"github.com/stylediscover/server/pkg/logger"
)

// UserHandler handles HTTP requests for shopper accounts using CQRS pattern
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	getUserHandler  *query.GetUserHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	getUserHandler *query.GetUserHandler,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter, requestLatency)

	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		getUserHandler:  getUserHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	// Protected routes
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", AuthMiddleware(h.GetProfile))).Methods("GET")
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Str("username", req.Username).Msg("Registration failed")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	logger.Logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("Shopper registered")
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		logger.Logger.Warn().Str("username", req.Username).Msg("Login failed")
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": result.Token,
			"user":  result.User,
		},
	})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.getUserHandler.Handle(query.GetUserQuery{
		ID: userIDFromContext(r.Context()),
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
		Data:    user,
	})
}

// RegisterHealthCheck adds a health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "User service is healthy",
		})
	}).Methods("GET")
}
