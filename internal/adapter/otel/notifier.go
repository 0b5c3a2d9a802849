package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// TracingNotifier wraps a domain.Notifier with OpenTelemetry tracing.
type TracingNotifier struct {
	next   domain.Notifier
	tracer trace.Tracer
}

// Compile-time check: TracingNotifier implements domain.Notifier.
var _ domain.Notifier = (*TracingNotifier)(nil)

// NewTracingNotifier creates a tracing decorator around the given notifier.
func NewTracingNotifier(next domain.Notifier) *TracingNotifier {
	return &TracingNotifier{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (n *TracingNotifier) SendApprovalNotice(ctx context.Context, notice domain.ApprovalNotice) error {
	ctx, span := n.tracer.Start(ctx, "Notifier.SendApprovalNotice",
		trace.WithAttributes(
			attribute.String("notice.business", notice.BusinessName),
		),
	)
	defer span.End()

	err := n.next.SendApprovalNotice(ctx, notice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (n *TracingNotifier) SendDeclineNotice(ctx context.Context, notice domain.DeclineNotice) error {
	ctx, span := n.tracer.Start(ctx, "Notifier.SendDeclineNotice",
		trace.WithAttributes(
			attribute.String("notice.business", notice.BusinessName),
		),
	)
	defer span.End()

	err := n.next.SendDeclineNotice(ctx, notice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
