// Package eventing declares the event kinds of the framework and the handler
// contracts the event bus dispatches to.
package eventing

import (
	"context"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
)

// BusinessEvent is an event whose handlers may veto the operation that
// raised it. Implement it by embedding BusinessEventBase.
type BusinessEvent interface {
	businessEvent()
}

// DomainEvent is broadcast to every handler after something happened.
// Implement it by embedding DomainEventBase.
type DomainEvent interface {
	domainEvent()
}

// BusinessEventBase marks a struct as a BusinessEvent.
type BusinessEventBase struct{}

func (BusinessEventBase) businessEvent() {}

// DomainEventBase marks a struct as a DomainEvent.
type DomainEventBase struct{}

func (DomainEventBase) domainEvent() {}

// BusinessEventHandler handles business events of type E.
type BusinessEventHandler[E BusinessEvent] interface {
	Handle(ctx context.Context, event E) result.Result
}

// DomainEventHandler handles domain events of type E.
type DomainEventHandler[E DomainEvent] interface {
	Handle(ctx context.Context, event E) error
}

// BusinessEventHandlerFunc adapts a function to BusinessEventHandler.
type BusinessEventHandlerFunc[E BusinessEvent] func(ctx context.Context, event E) result.Result

// Handle calls f.
func (f BusinessEventHandlerFunc[E]) Handle(ctx context.Context, event E) result.Result {
	return f(ctx, event)
}

// DomainEventHandlerFunc adapts a function to DomainEventHandler.
type DomainEventHandlerFunc[E DomainEvent] func(ctx context.Context, event E) error

// Handle calls f.
func (f DomainEventHandlerFunc[E]) Handle(ctx context.Context, event E) error {
	return f(ctx, event)
}

// EventBus dispatches events to their registered handlers.
type EventBus interface {
	// TriggerBusiness runs the handlers of event in registration order and
	// returns the first failed result, or an ok result.
	TriggerBusiness(ctx context.Context, event BusinessEvent) (result.Result, error)
	// TriggerDomain runs every handler of event and waits for all of them.
	TriggerDomain(ctx context.Context, event DomainEvent) error
}
