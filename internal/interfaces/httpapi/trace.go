package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("league-portal/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handler operations only. Helpers and
// middleware share the request span, and untraced routes such as /healthz
// never get a root span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(handlerAttributes(ctx, name)...))
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

func handlerAttributes(ctx context.Context, name string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("league.operation", strings.TrimPrefix(name, handlerSpanPrefix)),
	}
	if p, ok := principalFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("league.player_id", p.UserID))
	}
	return attrs
}
