package eventing

import (
	"context"
	"reflect"
	"sync"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
)

type businessInvoker func(ctx context.Context, event eventing.BusinessEvent) result.Result

type domainInvoker func(ctx context.Context, event eventing.DomainEvent) error

// Registry maps event types to their handlers.
type Registry struct {
	mu       sync.RWMutex
	business map[reflect.Type][]businessInvoker
	domain   map[reflect.Type][]domainInvoker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		business: make(map[reflect.Type][]businessInvoker),
		domain:   make(map[reflect.Type][]domainInvoker),
	}
}

// RegisterBusinessHandler appends handler to the handlers of E.
func RegisterBusinessHandler[E eventing.BusinessEvent](r *Registry, handler eventing.BusinessEventHandler[E]) {
	invoke := func(ctx context.Context, event eventing.BusinessEvent) result.Result {
		return handler.Handle(ctx, event.(E))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t := reflect.TypeOf((*E)(nil)).Elem()
	r.business[t] = append(r.business[t], invoke)
}

// RegisterDomainHandler appends handler to the handlers of E.
func RegisterDomainHandler[E eventing.DomainEvent](r *Registry, handler eventing.DomainEventHandler[E]) {
	invoke := func(ctx context.Context, event eventing.DomainEvent) error {
		return handler.Handle(ctx, event.(E))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t := reflect.TypeOf((*E)(nil)).Elem()
	r.domain[t] = append(r.domain[t], invoke)
}

func (r *Registry) businessHandlers(t reflect.Type) []businessInvoker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]businessInvoker(nil), r.business[t]...)
}

func (r *Registry) domainHandlers(t reflect.Type) []domainInvoker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domainInvoker(nil), r.domain[t]...)
}
