package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// GoogleCloudHandler is a slog.Handler emitting the one-line JSON shape
// Google Cloud Logging's ingestion expects: a "severity" field in place of
// slog's numeric level, with WithAttrs/WithGroup attributes folded in under
// their group-qualified, dotted key.
type GoogleCloudHandler struct {
	writer *os.File
	level  slog.Level
	groups []string    // open WithGroup names, outermost first
	attrs  []slog.Attr // accumulated WithAttrs, each already group-qualified
}

// NewGoogleCloudHandler builds a handler writing to writer at the given
// minimum level.
func NewGoogleCloudHandler(writer *os.File, level slog.Level) *GoogleCloudHandler {
	return &GoogleCloudHandler{writer: writer, level: level}
}

func (h *GoogleCloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle flattens r's own attributes (qualified by any still-open group via
// WithGroup) onto the handler's accumulated WithAttrs set, then encodes the
// whole entry as one JSON line.
func (h *GoogleCloudHandler) Handle(_ context.Context, r slog.Record) error {
	entry := make(map[string]interface{}, r.NumAttrs()+len(h.attrs)+3)
	entry["severity"] = convertToSeverity(r.Level)
	entry["message"] = r.Message
	entry["time"] = r.Time.Format(time.RFC3339Nano)

	for _, a := range h.attrs {
		entry[a.Key] = a.Value.Any()
	}
	// Group attributes are expanded member by member, each under the
	// group's name added to the dotted key path.
	var add func(groups []string, a slog.Attr)
	add = func(groups []string, a slog.Attr) {
		v := a.Value.Resolve()
		if v.Kind() == slog.KindGroup {
			inner := append(append([]string(nil), groups...), a.Key)
			for _, ga := range v.Group() {
				add(inner, ga)
			}
			return
		}
		entry[qualify(groups, a.Key)] = v.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		add(h.groups, a)
		return true
	})

	return json.NewEncoder(h.writer).Encode(entry)
}

// qualify prefixes key with the dotted path of any open groups, matching the
// nesting slog.Handler implementations are expected to honor instead of
// discarding groups outright.
func qualify(groups []string, key string) string {
	for i := len(groups) - 1; i >= 0; i-- {
		key = groups[i] + "." + key
	}
	return key
}

func (h *GoogleCloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	qualified := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		qualified[i] = slog.Any(qualify(h.groups, a.Key), a.Value.Any())
	}
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), qualified...)
	return &next
}

func (h *GoogleCloudHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func convertToSeverity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}

// moveLogGroup bundles one /move turn's observability fields -- request id,
// turn, move, search depth, and wall-clock duration -- as the slog.Attr
// group handleMove logs under, so every move log line carries the same
// shape regardless of which agent answered it.
func moveLogGroup(gameID string, turn int, move string, depth int, duration time.Duration) slog.Attr {
	return slog.Group("move",
		slog.String("request_id", gameID),
		slog.Int("turn", turn),
		slog.String("direction", move),
		slog.Int("depth", depth),
		slog.Duration("duration", duration),
	)
}
