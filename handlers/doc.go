// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP views of the polls app.

PollHandler depends on a db.PollStore and a clock:

	pollHandler := handlers.NewPollHandler(store, time.Now)

# Views

	GET  /polls/      → Index  (polls:index)
	GET  /polls/{id}/ → Detail (polls:detail)
	POST /polls/      → CreatePoll

Index lists every poll whose pub_date is not in the future, newest
first. With no such poll the page reads "No polls are available.".

Detail returns 404 for unknown ids and for polls dated in the future.

Both views render HTML from the embedded templates/ directory, or JSON
when the request's Accept header includes application/json. The JSON
index body names its list latest_poll_list.
*/
package handlers
