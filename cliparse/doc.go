// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Settings are read from, in increasing order of precedence:

 1. a YAML file (-c or CONFIG_PATH)
 2. environment variables
 3. CLI flags

File and environment decoding use cleanenv.

# Fields

	Field        Flag   Env            YAML           Default
	Env          -env   APP_ENV        env            local
	Port         -p     PORT           port           3318
	DatabaseURL  -d     DATABASE_URL   database_url   (required)
	DatabaseType -t     DATABASE_TYPE  database_type  sqlite
	CORSOrigins  -cors  CORS_ORIGINS   cors_origins   *

# Validation

ParseFlags returns an error if the database URL is missing, the database
type is neither sqlite nor postgres, or the port is not positive.
*/
package cliparse
