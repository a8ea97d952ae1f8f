/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package httpd is the HTTP boundary of the service. It owns the router,
// the middleware chain and the mapping from domain errors to status codes;
// nothing below this package knows about HTTP.
package httpd

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi/accounts"
	"github.com/suparena/financeapi/auth"
	"github.com/suparena/financeapi/config"
)

// Server serves the account API.
type Server struct {
	router   *mux.Router
	handler  http.Handler
	http     *http.Server
	accounts *accounts.Service
	gate     *auth.Gate
	origins  []string
	log      *logrus.Logger
}

// New builds a Server with its routes and middleware wired. The health
// endpoint sits outside the auth gate; everything under /accounts is
// behind it.
func New(svc *accounts.Service, gate *auth.Gate, cfg *config.Config, log *logrus.Logger) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		accounts: svc,
		gate:     gate,
		origins:  cfg.OriginList(),
		log:      log,
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/accounts").Subrouter()
	api.Use(s.authMiddleware)
	api.HandleFunc("", s.handleGetAccounts).Methods(http.MethodGet)
	api.HandleFunc("", s.handleCreateAccount).Methods(http.MethodPost)
	api.HandleFunc("", s.handleUpdateAccount).Methods(http.MethodPut)

	// CORS and request logging wrap the router directly so preflight
	// requests get handled even though no OPTIONS route is registered.
	s.handler = s.requestMiddleware(s.corsMiddleware(s.router))

	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the full middleware-wrapped handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe blocks serving requests until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.http.Addr).Info("http server listening")
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
