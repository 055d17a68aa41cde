// Package logging defines the minimal structured logging seam consumed by the
// routing core. Business logic never logs through a global; it receives a
// Logger collaborator and defaults to NoOpLogger when none is supplied.
// Adapters are provided for log/slog and rs/zerolog so applications can plug
// in whichever structured logger they already run.
package logging
