package observability

import "go.uber.org/zap"

// Field helper aliases so callers outside this package log structured
// fields without importing zap directly.
//
//nolint:gochecknoglobals // Function aliases, not mutable state
var (
	String  = zap.String
	Int     = zap.Int
	Bool    = zap.Bool
	Float64 = zap.Float64
	Error   = zap.Error
)
