// Package tracing installs the OpenTelemetry tracer provider and offers the
// span helper the rest of the site uses.
//
// Without OTEL_EXPORTER_OTLP_ENDPOINT a no-op provider is installed and
// every span is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "admybrand"

// Start creates a span as a child of the span in ctx, or a root span when
// ctx carries none. The caller must end it:
//
//	ctx, span := tracing.Start(ctx, "contact.mailgun.send",
//	    attribute.String("contact.submission_id", sub.ID),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err. A nil err leaves it untouched.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
