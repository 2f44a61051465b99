// Package log builds the slog loggers used by scopecalc.
//
// Loggers write text or JSON and wrap their handler in a PathHandler, which
// rewrites file paths under the user's home directory to "~/..." so that
// log output carrying input, report or sample paths can be pasted into an
// issue without revealing the account name.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("input loaded", "path", "/home/alice/.scopecalc.yaml")
//	// path=~/.scopecalc.yaml
package log
