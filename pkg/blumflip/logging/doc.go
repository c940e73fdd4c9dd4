// Package logging provides a minimal logging facade for the blumflip
// packages.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It stays small so applications can substitute their own
// implementation for testing or for integration with an existing logging
// setup. Protocol code itself never logs; it reports through the transcript
// sink. Loggers exist for the drivers and the diagnostics around runs.
//
// # Usage
//
//	logger := logging.New(nil) // binds slog.Default()
//	logger.Info(ctx, "starting series", "runs", 10, "group", "mod7")
//
// # Hiding Secrets
//
// Secret exponents must never reach a log line before the protocol itself
// discloses them. Mark such attributes with Hidden:
//
//	logger.Debug(ctx, "sampled blinding exponent", logging.Hidden("nonce"))
//	// logs: nonce="[hidden]"
package logging
