package eventing

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/eventing"

// ErrMissingEvent is returned when a nil event is triggered.
var ErrMissingEvent = errors.New("event is required")

// isNilEvent reports a nil interface as well as a typed nil pointer.
func isNilEvent(event any) bool {
	if event == nil {
		return true
	}
	v := reflect.ValueOf(event)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Bus is the in-process implementation of eventing.EventBus.
type Bus struct {
	registry *Registry
	logger   logger.Logger
	tracer   trace.Tracer
}

var _ eventing.EventBus = (*Bus)(nil)

// NewBus creates a bus dispatching to the handlers of registry.
func NewBus(registry *Registry, logger logger.Logger) *Bus {
	return &Bus{
		registry: registry,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// TriggerBusiness implements eventing.EventBus.
func (b *Bus) TriggerBusiness(ctx context.Context, event eventing.BusinessEvent) (res result.Result, err error) {
	if isNilEvent(event) {
		return result.Result{}, ErrMissingEvent
	}

	t := reflect.TypeOf(event)
	handlers := b.registry.businessHandlers(t)

	ctx, span := b.tracer.Start(ctx, "eventing.TriggerBusiness", trace.WithAttributes(
		attribute.String("event.type", t.String()),
		attribute.Int("event.handlers", len(handlers)),
	))
	start := time.Now()
	defer func() {
		outcome := "success"
		switch {
		case err != nil:
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case res.Failed():
			outcome = "failed"
			span.SetStatus(codes.Error, res.Message())
		}
		metrics.RecordEventDispatch("business", t.String(), outcome, time.Since(start))
		span.End()
	}()

	log := b.logger.With("event", t.String(), "kind", "business")
	for i, handle := range handlers {
		res, err = invokeBusiness(ctx, handle, event)
		if err != nil {
			log.Error(fmt.Sprintf("Business handler %d failed: %v", i, err))
			return result.Result{}, err
		}
		if res.Failed() {
			log.Info(fmt.Sprintf("Rejected by handler %d: %s", i, res.Message()))
			return res, nil
		}
	}

	log.Debug(fmt.Sprintf("Passed %d handlers", len(handlers)))
	return result.Ok(), nil
}

// TriggerDomain implements eventing.EventBus.
func (b *Bus) TriggerDomain(ctx context.Context, event eventing.DomainEvent) (err error) {
	if isNilEvent(event) {
		return ErrMissingEvent
	}

	t := reflect.TypeOf(event)
	handlers := b.registry.domainHandlers(t)

	ctx, span := b.tracer.Start(ctx, "eventing.TriggerDomain", trace.WithAttributes(
		attribute.String("event.type", t.String()),
		attribute.Int("event.handlers", len(handlers)),
	))
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.RecordEventDispatch("domain", t.String(), outcome, time.Since(start))
		span.End()
	}()

	var g errgroup.Group
	for _, handle := range handlers {
		handle := handle
		g.Go(func() error {
			return invokeDomain(ctx, handle, event)
		})
	}

	log := b.logger.With("event", t.String(), "kind", "domain")
	if err = g.Wait(); err != nil {
		log.Error("Domain event failed: ", err)
		return err
	}

	log.Debug(fmt.Sprintf("Delivered to %d handlers", len(handlers)))
	return nil
}

func invokeBusiness(ctx context.Context, handle businessInvoker, event eventing.BusinessEvent) (res result.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("business handler panicked: %v", r)
		}
	}()
	return handle(ctx, event), nil
}

func invokeDomain(ctx context.Context, handle domainInvoker, event eventing.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("domain handler panicked: %v", r)
		}
	}()
	return handle(ctx, event)
}
