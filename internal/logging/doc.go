// Package logging assembles the structured slog loggers used across asreval.
//
// It owns the console and JSON handlers and centralizes level parsing so new
// components emit data with the same shape as the rest of the tool. Loggers
// write to stderr so evaluation output on stdout stays clean for piping.
//
// The "component" attribute is pulled out of the attr list and rendered as a
// message prefix by the console handler. NewNop returns a logger for tests
// and wiring code that cannot fail.
package logging
