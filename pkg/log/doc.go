// Package log provides entid's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled, Field-based
// methods. Internally it is backed by the standard library's slog via a
// custom handler that feeds a Formatter/Output pipeline, so output stays
// consistent while remaining interoperable with the slog ecosystem.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("entropy"))
//	l.Info("node answered", log.Str("node", ep), log.Dur("rtt", rtt))
//
// There is no package-level default logger; construct one and pass it
// explicitly.
package log
