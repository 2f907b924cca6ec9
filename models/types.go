package models

import (
	"time"

	"github.com/google/uuid"
)

// RecentWindow is how far back a poll still counts as published recently.
const RecentWindow = 24 * time.Hour

// EmptyIndexMessage is shown on the index page when no poll is visible.
const EmptyIndexMessage = "No polls are available."

// Request types

// CreatePollRequest is the body of POST /polls/. PubDate is optional;
// the handler's clock fills it in when absent.
type CreatePollRequest struct {
	Question string     `json:"question"`
	PubDate  *time.Time `json:"pub_date,omitempty"`
}

// Response types

type IndexResponse struct {
	LatestPollList []Poll `json:"latest_poll_list"`
	Message        string `json:"message,omitempty"`
}

type DetailResponse struct {
	Poll                 Poll `json:"poll"`
	WasPublishedRecently bool `json:"was_published_recently"`
}

// Domain types

type Poll struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	PubDate  time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether PubDate falls in (now-24h, now].
func (p Poll) WasPublishedRecently(now time.Time) bool {
	age := now.Sub(p.PubDate)
	return age >= 0 && age < RecentWindow
}

// IsPublished reports whether the poll is visible at now.
// Polls dated in the future stay hidden until their PubDate.
func (p Poll) IsPublished(now time.Time) bool {
	return !p.PubDate.After(now)
}

func (p Poll) String() string {
	return p.Question
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
