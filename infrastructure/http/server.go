package http

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/workspace"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/session"
	"orgconnect/infrastructure/sqlite"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	DB         *sqlite.DB
	Sessions   *session.Store
	Workspaces *workspace.Registry
	Hasher     *password.Hasher
	Metrics    *prometheus.Registry
	Now        func() time.Time
}

// NewServer creates a new http server.
func NewServer(addr string, db *sqlite.DB, sessions *session.Store, workspaces *workspace.Registry, hasher *password.Hasher, reg *prometheus.Registry) *Server {
	s := &Server{
		Addr:       addr,
		router:     chi.NewRouter(),
		DB:         db,
		Sessions:   sessions,
		Workspaces: workspaces,
		Hasher:     hasher,
		Metrics:    reg,
		Now:        time.Now,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)
	s.router.Use(s.SessionMiddleware)

	// Handle root requests - check auth status but don't require it.
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessioncontext.GetUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
	})

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if reg != nil {
		s.router.Handle("/metrics", metrics.Handler(reg))
	}

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.RegisterLoginRoutes()

	s.router.Route("/app", func(r chi.Router) {
		r.Use(s.AuthenticateMiddleware)
		r.Use(s.Workspaces.Middleware)
		s.RegisterFrontendRoutes(r)
	})

	s.server.Handler = s.router
	return s
}

// SessionMiddleware puts the session named by the cookie, if any, on the
// request context. It never rejects a request.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := s.Sessions.Load(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				slog.Error("load session failed", slog.String("session_id", cookie.Value), slog.Any("err", err))
			}
			// Unknown or expired: drop any live state left for the token.
			s.Workspaces.Close(cookie.Value)
			http.SetCookie(w, session.ClearCookie())
			next.ServeHTTP(w, r)
			return
		}

		ctx := sessioncontext.NewContextWithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateMiddleware sends requests without a session to the login page.
func (s *Server) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessioncontext.GetSessionFromContext(r.Context()); !ok {
			slog.Warn("no session for app route", slog.String("method", r.Method), slog.String("path", r.URL.Path))
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("err", err))
		}
	}()
	slog.Info("http server listening", slog.String("addr", s.ln.Addr().String()))
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}
