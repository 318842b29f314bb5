package main

import "log/slog"

// verbosityToLevel maps the 0-5 verbosity scale used across this module's
// flags to a slog.Level. 0 is the quietest (errors only); 5 is the most
// verbose (debug).
func verbosityToLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelError
	case v == 1:
		return slog.LevelWarn
	case v <= 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
