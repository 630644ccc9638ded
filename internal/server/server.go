package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/config"
	"github.com/jonathan/stylesense/internal/kv"
	"github.com/jonathan/stylesense/internal/recommend"
	"github.com/jonathan/stylesense/internal/server/middleware"
	"github.com/jonathan/stylesense/internal/server/ratelimit"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	catalog     *catalog.Store
	recommender *recommend.Service
	rateLimiter *ratelimit.Limiter
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server dependencies and settings
type Config struct {
	Port int
	// Store persists accounts.
	Store kv.Store
	// Chooser drives the attribute-driven pick. Nil seeds one from the clock.
	Chooser   recommend.Chooser
	Password  *config.PasswordConfig
	JWT       *config.JWTConfig
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("account store is required")
	}
	if cfg.Password == nil {
		return nil, errors.New("password config is required")
	}
	if cfg.JWT == nil {
		return nil, errors.New("JWT config is required")
	}

	chooser := cfg.Chooser
	if chooser == nil {
		chooser = recommend.NewSeededChooser(uint64(time.Now().UnixNano()))
	}

	store := catalog.New()
	s := &Server{
		catalog:     store,
		recommender: recommend.NewService(store, recommend.NewLockedChooser(chooser)),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		userService: NewUserService(cfg.Store, cfg.Password),
	}
	jwtService := NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(s.userService, jwtService)

	requireAuth := middleware.AuthMiddleware(jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Catalog
	mux.HandleFunc("GET /v1/categories", s.handleListCategories)
	mux.HandleFunc("GET /v1/categories/{category}/outfits", s.handleCategoryOutfits)
	mux.HandleFunc("GET /v1/try", s.handleTry)
	mux.HandleFunc("GET /v1/reference/skin-tones", s.handleSkinTones)
	mux.HandleFunc("GET /v1/reference/body-types", s.handleBodyTypes)
	mux.HandleFunc("POST /v1/recommendations", s.handleRecommend)

	// Accounts
	mux.HandleFunc("POST /v1/auth/signup", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)
	mux.Handle("GET /v1/users/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))
	mux.Handle("PUT /v1/users/me/measurements", requireAuth(http.HandlerFunc(s.authHandler.UpdateMeasurements)))
	mux.Handle("GET /v1/users/me/history", requireAuth(http.HandlerFunc(s.authHandler.ListHistory)))
	mux.Handle("POST /v1/users/me/history", requireAuth(http.HandlerFunc(s.authHandler.AddHistory)))

	s.handler = s.withLogging(s.withRateLimit(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging attaches a request-scoped logger and logs each request on completion
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)

		logger := log.With().
			Str("request_id", rid).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_ip", extractClientID(r)).
			Logger()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context())))

		var ev *zerolog.Event
		if rec.status >= 500 {
			ev = logger.Error()
		} else {
			ev = logger.Info()
		}
		ev.Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http request served")
	})
}

// extractClientID extracts the client identifier (IP address) from the request.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	zerolog.Ctx(r.Context()).Warn().
		Int("limit", info.Limit).
		Time("reset", info.ResetTime).
		Msg("rate limit exceeded")

	writeJSON(w, http.StatusTooManyRequests, response)
}
