// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the polls app.

# Domain Types

  - Poll: id, question, pub_date

Poll carries two time predicates. Both take the current time as a
parameter instead of reading the clock:

	poll.IsPublished(now)          // pub_date <= now
	poll.WasPublishedRecently(now) // now-24h < pub_date <= now

# Request Types

  - CreatePollRequest: question, optional pub_date

# Response Types

  - IndexResponse: latest_poll_list, message (set when the list is empty)
  - DetailResponse: poll, was_published_recently
  - ErrorResponse: error, message

# Constants

	RecentWindow      = 24 * time.Hour
	EmptyIndexMessage = "No polls are available."
*/
package models
