// Package logger builds configured slog.Logger instances with functional
// options for level, format, output and static attributes. Defaults target
// production: JSON records at info level on stdout.
package logger
