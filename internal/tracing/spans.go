package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrSessionID = "console.session.id"
	AttrActorID   = "actor.id"
	AttrActorRole = "actor.role"
	AttrCourseID  = "course.id"
	AttrStudentID = "student.id"
	AttrTerm      = "search.term"
	AttrResults   = "result.count"
	AttrErrorKind = "error.kind"
)

// Span name prefixes.
const (
	SpanPrefixAdmin   = "console.admin."
	SpanPrefixStudent = "console.student."
	SpanLogin         = "console.login"
)

// StartAction starts a span for one console action.
func StartAction(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndAction records the outcome on span and ends it. kind is the short error
// classification; it is ignored when err is nil.
func EndAction(span trace.Span, err error, kind string) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorKind, kind))
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
