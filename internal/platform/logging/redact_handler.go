package logging

import (
	"context"
	"log/slog"
	"slices"
)

// RedactHandler applies a ReplaceAttr function in front of a handler that has
// no ReplaceAttr hook of its own, such as the charmbracelet/log pretty handler.
type RedactHandler struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

// NewRedactHandler wraps next so every attribute passes through replace first.
func NewRedactHandler(next slog.Handler, replace func(groups []string, a slog.Attr) slog.Attr) *RedactHandler {
	return &RedactHandler{next: next, replace: replace}
}

// Enabled defers to the wrapped handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rebuilds the record with redacted attributes.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.replace(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, redacted)
}

// WithAttrs redacts attrs before they are bound to the wrapped handler.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replace(h.groups, a)
	}

	return &RedactHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

// WithGroup returns a handler that reports name in the groups passed to replace.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &RedactHandler{
		next:    h.next.WithGroup(name),
		replace: h.replace,
		groups:  append(slices.Clone(h.groups), name),
	}
}
