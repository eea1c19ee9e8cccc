package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// RequestID records the request correlation id under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Language records a dictionary locale under "lang".
func Language[T ~string](lang T) slog.Attr {
	return slog.String("lang", string(lang))
}

// Version records a game asset revision under "version".
func Version(v fmt.Stringer) slog.Attr {
	return slog.String("version", v.String())
}

// Identifier records a translated item or block id under "identifier".
func Identifier[T ~string](id T) slog.Attr {
	return slog.String("identifier", string(id))
}

// Source records where raw data came from (URL, bucket key, cache key).
func Source(src string) slog.Attr {
	return slog.String("source", src)
}

// Count records a size or counter under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
