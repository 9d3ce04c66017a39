package checker

import (
	"context"
	"fmt"
	"time"
	"vatcheck/internal/config"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/logger"
	"vatcheck/pkg/metrics"
	"vatcheck/pkg/serrors"
	"vatcheck/pkg/vies"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "vatcheck/internal/checker"

// Options configure pacing and instrumentation of the checker.
type Options struct {
	// Pacer is waited on after every call answered by VIES. Nil disables pacing.
	Pacer Pacer
	// Meter creates the checker's instruments. Nil disables metrics.
	Meter metric.Meter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, meter metric.Meter) Options {
	return Options{
		Pacer: FixedDelay(cfg.VIES.RequestDelay),
		Meter: meter,
	}
}

// checker is the concrete implementation of the Checker interface.
type checker struct {
	client vies.Client
	pacer  Pacer

	checks   metric.Int64Counter
	duration metric.Float64Histogram
}

// Check implements Checker.
func (c *checker) Check(ctx context.Context, raw any) (res domain.CheckResult) {
	start := time.Now()
	var kind serrors.Kind

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "recovered panic while checking VAT number", zap.Any("panic", p), zap.Stack("stack"))
			res = domain.ErrorResult(fmt.Sprintf("Unexpected error: %v", p))
			kind = serrors.ErrInternal
		}
		c.record(ctx, kind, time.Since(start))
	}()

	inquiry, err := Normalize(raw)
	if err != nil {
		kind = serrors.KindOf(err)
		logger.Debug(ctx, "rejected VAT input", zap.Error(err))

		return domain.ErrorResult(err.Error())
	}

	ctx = logger.WithFields(ctx, zap.Stringer("vat", inquiry))
	logger.Debug(ctx, "checking VAT number")

	out, err := c.client.CheckVat(ctx, inquiry)
	if err != nil {
		kind = serrors.KindOf(err)
		msg := err.Error()
		if !isPipelineKind(kind) {
			kind = serrors.ErrInternal
			msg = "Unexpected error: " + msg
		}
		logger.Warn(ctx, "VAT check failed", zap.String("kind", kind.Error()), zap.Error(err))

		// a fault is still a full round trip through the service
		if kind == serrors.ErrFault {
			c.pace(ctx)
		}

		return domain.ErrorResult(msg)
	}
	if out == nil {
		kind = serrors.ErrInternal

		return domain.ErrorResult("Unexpected error: empty result from client")
	}

	logger.Info(ctx, "VAT number checked", zap.Bool("valid", out.Valid))
	c.pace(ctx)

	return *out
}

// Rows implements Checker.
func (c *checker) Rows(ctx context.Context, raw any) [][]any {
	return [][]any{c.Check(ctx, raw).Row()}
}

func (c *checker) pace(ctx context.Context) {
	if c.pacer != nil {
		c.pacer.Wait(ctx)
	}
}

func (c *checker) record(ctx context.Context, kind serrors.Kind, elapsed time.Duration) {
	outcome := "ok"
	if kind != nil {
		outcome = kind.Error()
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	c.checks.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// isPipelineKind reports whether errors of kind k already carry a message
// meant for the result's Error field.
func isPipelineKind(k serrors.Kind) bool {
	switch k {
	case serrors.ErrBadRequest,
		serrors.ErrNetwork,
		serrors.ErrUnavailable,
		serrors.ErrEmptyResponse,
		serrors.ErrMalformedResponse,
		serrors.ErrFault:
		return true
	default:
		return false
	}
}

// New creates a Checker asking VIES through client.
func New(client vies.Client, options Options) (Checker, error) {
	meter := options.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(meterName)
	}

	checks, err := meter.Int64Counter("vatcheck.checks",
		metric.WithDescription("Number of VAT checks by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create checks counter: %w", err)
	}
	duration, err := meter.Float64Histogram("vatcheck.check.duration",
		metric.WithDescription("Duration of VAT checks, including pacing."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &checker{
		client:   client,
		pacer:    options.Pacer,
		checks:   checks,
		duration: duration,
	}, nil
}
