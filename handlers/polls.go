// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/urls"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"detailURL": func(id uuid.UUID) (string, error) {
		return urls.Reverse(urls.Detail, id.String())
	},
	"indexURL": func() (string, error) {
		return urls.Reverse(urls.Index)
	},
	"since": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
}).ParseFS(templateFS, "templates/*.html"))

type PollHandler struct {
	store db.PollStore
	now   func() time.Time
}

// NewPollHandler takes the clock as a dependency so views are deterministic in tests.
func NewPollHandler(store db.PollStore, now func() time.Time) *PollHandler {
	return &PollHandler{store: store, now: now}
}

type indexPage struct {
	LatestPollList []models.Poll
	EmptyMessage   string
	Now            time.Time
}

type detailPage struct {
	Poll                 models.Poll
	WasPublishedRecently bool
	Now                  time.Time
}

// Index handles GET /polls/
// Lists every poll published up to now, newest first
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	polls, err := h.store.FilterPublishedUpTo(r.Context(), now)
	if err != nil {
		slog.Error("failed to query polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if middleware.WantsJSON(r) {
		resp := models.IndexResponse{LatestPollList: polls}
		if len(polls) == 0 {
			resp.Message = models.EmptyIndexMessage
		}
		middleware.JSONResponse(w, http.StatusOK, resp)
		return
	}

	render(w, "index.html", indexPage{
		LatestPollList: polls,
		EmptyMessage:   models.EmptyIndexMessage,
		Now:            now,
	})
}

// Detail handles GET /polls/{id}/
// Future-dated polls are treated as missing
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		notFound(w, r)
		return
	}

	poll, err := h.store.FindByID(r.Context(), id)
	if errors.Is(err, db.ErrPollNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "poll_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.now()
	if !poll.IsPublished(now) {
		notFound(w, r)
		return
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{
			Poll:                 poll,
			WasPublishedRecently: poll.WasPublishedRecently(now),
		})
		return
	}

	render(w, "detail.html", detailPage{
		Poll:                 poll,
		WasPublishedRecently: poll.WasPublishedRecently(now),
		Now:                  now,
	})
}

// CreatePoll handles POST /polls/
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	poll, err := h.store.Create(r.Context(), question, pubDate)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "pub_date", poll.PubDate)

	if location, err := urls.Reverse(urls.Detail, poll.ID.String()); err == nil {
		w.Header().Set("Location", location)
	}
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	http.Error(w, "Poll not found", http.StatusNotFound)
}

// render executes into a buffer first so a template error never leaves a half-written page
func render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
