// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
	"github.com/danielhkuo/polls/urls"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootRedirectsToIndex(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls/" {
		t.Errorf("Expected redirect to /polls/, got '%s'", loc)
	}
}

func TestNamedRoutes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewPollStore(conn, db.DialectSQLite)
	mux := NewRouter(conn, testutil.GetTestConfig())

	now := time.Now()
	past := testutil.CreateTestPoll(t, store, "past poll", -5, now)
	future := testutil.CreateTestPoll(t, store, "future poll", 5, now)

	indexPath, err := urls.Reverse(urls.Index)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("index", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", indexPath, nil, testutil.JSONHeaders))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.IndexResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.LatestPollList) != 1 || resp.LatestPollList[0].ID != past.ID {
			t.Errorf("Expected only the past poll, got %v", testutil.Questions(resp.LatestPollList))
		}
	})

	testCases := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"detail of past poll", past.ID.String(), http.StatusOK},
		{"detail of future poll", future.ID.String(), http.StatusNotFound},
		{"detail of missing poll", uuid.NewString(), http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := urls.Reverse(urls.Detail, tc.id)
			if err != nil {
				t.Fatal(err)
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest("GET", path, nil, nil))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus == http.StatusOK && !strings.Contains(w.Body.String(), past.Question) {
				t.Errorf("Expected body to contain '%s'", past.Question)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected poll routes to be wrapped with request logging")
			}
		})
	}
}

func TestCreateThroughRouter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls/", models.CreatePollRequest{Question: "Tabs or spaces?"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	location := w.Header().Get("Location")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", location, nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Tabs or spaces?") {
		t.Errorf("Expected created poll at %s, got: %s", location, w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(conn, testutil.GetTestConfig())

	// Unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/polls/"},
		{"POST", "/polls/" + uuid.NewString() + "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/polls/"+uuid.NewString()+"/results/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
