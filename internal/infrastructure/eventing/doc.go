// Package eventing implements the in-process event bus.
//
// Handlers are registered per concrete event type; an event is dispatched to
// the handlers of its exact dynamic type. Business events stop at the first
// failed result, domain events fan out to every handler concurrently.
package eventing
