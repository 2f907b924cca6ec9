// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger builds the process-wide slog.Logger.

# Environments

New selects a handler from the configured environment:

	Env    Handler  Level
	local  text     debug
	dev    text     debug
	prod   JSON     info

Any unrecognised environment is treated like prod.

# Usage

	slog.SetDefault(logger.New(cfg.Env))
*/
package logger
