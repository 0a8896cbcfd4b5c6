package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field. Callers build fields through this package
// and never import zap themselves.
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

// Uint32 is used for circuit breaker counters
func Uint32(key string, val uint32) Field { return zap.Uint32(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

// Any falls back to reflection; prefer a typed helper
func Any(key string, val interface{}) Field { return zap.Any(key, val) }

// ErrorField logs err under the "error" key
func ErrorField(err error) Field { return zap.Error(err) }
