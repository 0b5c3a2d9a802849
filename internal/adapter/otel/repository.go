package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/vendiq/internal/domain"
)

const tracerName = "github.com/neomorfeo/vendiq/internal/adapter/otel"

// TracingRepository wraps a domain.ApplicationRepository with OpenTelemetry
// tracing. Each method creates a span with semantic attributes and records
// errors.
type TracingRepository struct {
	next   domain.ApplicationRepository
	tracer trace.Tracer
}

// Compile-time check: TracingRepository implements domain.ApplicationRepository.
var _ domain.ApplicationRepository = (*TracingRepository)(nil)

// NewTracingRepository creates a tracing decorator around the given repository.
func NewTracingRepository(next domain.ApplicationRepository) *TracingRepository {
	return &TracingRepository{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (r *TracingRepository) Create(ctx context.Context, app domain.Application) error {
	ctx, span := r.tracer.Start(ctx, "ApplicationRepository.Create",
		trace.WithAttributes(
			attribute.String("application.id", app.ID),
			attribute.String("application.user_id", app.UserID),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, app)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingRepository) GetByID(ctx context.Context, id string) (domain.Application, error) {
	ctx, span := r.tracer.Start(ctx, "ApplicationRepository.GetByID",
		trace.WithAttributes(attribute.String("application.id", id)),
	)
	defer span.End()

	app, err := r.next.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return app, err
}

func (r *TracingRepository) GetByUser(ctx context.Context, userID string) (domain.Application, error) {
	ctx, span := r.tracer.Start(ctx, "ApplicationRepository.GetByUser",
		trace.WithAttributes(attribute.String("application.user_id", userID)),
	)
	defer span.End()

	app, err := r.next.GetByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return app, err
}

func (r *TracingRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Application, int, error) {
	ctx, span := r.tracer.Start(ctx, "ApplicationRepository.List",
		trace.WithAttributes(
			attribute.Int("filter.page", filter.Page),
			attribute.Int("filter.page_size", filter.PageSize),
		),
	)
	defer span.End()

	if filter.Status != nil {
		span.SetAttributes(attribute.String("filter.status", string(*filter.Status)))
	}

	apps, total, err := r.next.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("result.count", len(apps)),
			attribute.Int("result.total", total),
		)
	}
	return apps, total, err
}

func (r *TracingRepository) Update(ctx context.Context, app domain.Application) error {
	ctx, span := r.tracer.Start(ctx, "ApplicationRepository.Update",
		trace.WithAttributes(
			attribute.String("application.id", app.ID),
			attribute.String("application.status", string(app.Status)),
		),
	)
	defer span.End()

	err := r.next.Update(ctx, app)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
