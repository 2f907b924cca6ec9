// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

The server lists published poll questions and shows a detail page per
poll. Polls dated in the future stay hidden until their publication
time.

# Starting the Server

Configuration comes from flags, environment variables (optionally loaded
from a .env file), or a YAML file:

	DATABASE_URL=polls.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

Or with a config file:

	go run . -c config/local.yaml

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - APP_ENV (-env): local (default), dev, or prod; selects log format
  - CORS_ORIGINS (-cors): comma-separated allowed origins (default: *)
  - CONFIG_PATH (-c): YAML config file

Migrations run on every start.

# Architecture

  - handlers: index, detail, and create views
  - router: route registration on http.ServeMux
  - urls: route names and reverse lookup
  - middleware: logging, CORS, JSON helpers
  - models: Poll and request/response types
  - db: connections, migrations, PollStore
  - cliparse: configuration parsing
  - logger: slog setup
*/
package main
