// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls app.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health      - Health check
	GET  /            - Redirect to the index
	GET  /polls/      - Index  (polls:index)
	POST /polls/      - Create poll
	GET  /polls/{id}/ - Detail (polls:detail)

Paths come from the urls package, so links built with urls.Reverse always
match what is registered here.
*/
package router
