// Package logging wires request-scoped attributes from context into slog.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey string

const attrsKey contextKey = "slogAttrs"

// ContextHandler enriches log records with the [slog.Attr] values stored in
// the context with [WithAttrs] before delegating to the wrapped handler.
type ContextHandler struct {
	handler slog.Handler
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// Enabled delegates to the underlying handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the attributes stored in ctx to the record.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		for _, attr := range attrs {
			r.AddAttrs(attr)
		}
	}

	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores attributes in the context so that every log record emitted
// with that context carries them.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		return context.WithValue(ctx, attrsKey, append(existing, attrs...))
	}
	return context.WithValue(ctx, attrsKey, attrs)
}
