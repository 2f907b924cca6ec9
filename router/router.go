// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/urls"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	store := db.NewPollStore(conn, cfg.DatabaseType)
	pollHandler := handlers.NewPollHandler(store, time.Now)

	index := urls.MustPattern(urls.Index) + "{$}"
	detail := urls.MustPattern(urls.Detail) + "{$}"

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("GET "+index, middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("POST "+index, middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET "+detail, middleware.WithLogging(pollHandler.Detail))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, urls.MustPattern(urls.Index), http.StatusFound)
	})

	return mux
}
