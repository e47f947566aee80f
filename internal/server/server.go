package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/tournament-rewards/docs"
	"github.com/osse101/tournament-rewards/internal/database"
	"github.com/osse101/tournament-rewards/internal/handler"
	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/metrics"
	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/tournament"
)

// Dependencies are the services the HTTP surface dispatches to
type Dependencies struct {
	DBPool      database.Pool
	Rewards     rewards.Service
	Tournaments tournament.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree. It is separate from NewServer so tests can drive it directly.
func NewRouter(apiKey string, trustedProxies []string, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(handler.MaxRequestBodyBytes))
	r.Use(ActorIDMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	rewardsHandler := handler.NewRewardsHandler(deps.Rewards)
	tournamentHandler := handler.NewTournamentHandler(deps.Tournaments)
	adminHandler := handler.NewAdminHandler(deps.Tournaments, deps.Rewards)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tournaments/{id}", func(r chi.Router) {
			r.Get("/", tournamentHandler.HandleGet)
			r.Post("/transition", tournamentHandler.HandleTransition)
			r.Get("/history", tournamentHandler.HandleStatusHistory)
			r.Post("/distribute-rewards", rewardsHandler.HandleDistribute)
			r.Get("/participations", rewardsHandler.HandleListParticipations)
			r.Get("/runs", rewardsHandler.HandleListRuns)
		})

		r.Route("/participants/{id}", func(r chi.Router) {
			r.Get("/skills", rewardsHandler.HandleGetSkills)
			r.Get("/ledger", rewardsHandler.HandleListLedger)
			r.Get("/balances", rewardsHandler.HandleListBalances)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/tournaments/{id}/reset-to-completed", adminHandler.HandleResetToCompleted)
			r.Delete("/tournaments/{id}", adminHandler.HandlePurge)
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > MaxRequestIDLength {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
