// Package log provides secure logging with automatic sanitization of
// password material, built on top of the standard slog package.
//
// passforge handles plaintext passwords and the personal hints used to
// derive them. Neither may ever reach log output, even in verbose mode:
// logs get copied into bug reports and terminal scrollback outlives the
// session. The SecureHandler masks attribute values whose keys indicate
// secrets (password, hint, passphrase, ...) and values that look like
// credentials regardless of key name.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("analysis complete",
//	    "password", "hunter2",   // masked as ***REDACTED***
//	    "score", 1,
//	)
//	slog.SetDefault(logger)
package log
