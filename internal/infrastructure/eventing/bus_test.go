//go:build unit
// +build unit

package eventing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderPlacing struct {
	eventing.BusinessEventBase
	Amount int
}

type orderRefunding struct {
	eventing.BusinessEventBase
}

type orderPlaced struct {
	eventing.DomainEventBase
	ID int
}

func newTestBus(t *testing.T) (*Registry, *Bus) {
	t.Helper()
	registry := NewRegistry()
	return registry, NewBus(registry, testutil.SetupTestLogger(t))
}

func TestTriggerBusiness_NoHandlersIsOk(t *testing.T) {
	_, bus := newTestBus(t)

	res, err := bus.TriggerBusiness(context.Background(), orderPlacing{})

	require.NoError(t, err)
	assert.True(t, res.Succeeded())
}

func TestTriggerBusiness_AllHandlersSucceed(t *testing.T) {
	registry, bus := newTestBus(t)
	var calls []string

	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(_ context.Context, e orderPlacing) result.Result {
		calls = append(calls, "first")
		return result.Ok()
	}))
	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(_ context.Context, e orderPlacing) result.Result {
		calls = append(calls, "second")
		return result.Ok()
	}))

	res, err := bus.TriggerBusiness(context.Background(), orderPlacing{Amount: 3})

	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestTriggerBusiness_StopsAtFirstFailure(t *testing.T) {
	registry, bus := newTestBus(t)
	var thirdCalled bool

	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(context.Context, orderPlacing) result.Result {
		return result.Ok()
	}))
	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(_ context.Context, e orderPlacing) result.Result {
		if e.Amount <= 0 {
			return result.Fail("amount must be positive", result.ValidationFailure{MemberName: "Amount", Message: "must be positive"})
		}
		return result.Ok()
	}))
	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(context.Context, orderPlacing) result.Result {
		thirdCalled = true
		return result.Ok()
	}))

	res, err := bus.TriggerBusiness(context.Background(), orderPlacing{Amount: 0})

	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.Equal(t, "amount must be positive", res.Message())
	require.Len(t, res.Failures(), 1)
	assert.Equal(t, "Amount", res.Failures()[0].MemberName)
	assert.False(t, thirdCalled)
}

func TestTriggerBusiness_ExactTypeMatch(t *testing.T) {
	registry, bus := newTestBus(t)
	var called bool

	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderRefunding](func(context.Context, orderRefunding) result.Result {
		called = true
		return result.Fail("nope")
	}))

	res, err := bus.TriggerBusiness(context.Background(), orderPlacing{})
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.False(t, called)

	// A pointer is a different type than the value it points to.
	res, err = bus.TriggerBusiness(context.Background(), &orderRefunding{})
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.False(t, called)
}

func TestTriggerBusiness_PanicBecomesError(t *testing.T) {
	registry, bus := newTestBus(t)
	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[orderPlacing](func(context.Context, orderPlacing) result.Result {
		panic("kaboom")
	}))

	_, err := bus.TriggerBusiness(context.Background(), orderPlacing{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestTrigger_NilEvent(t *testing.T) {
	_, bus := newTestBus(t)

	_, err := bus.TriggerBusiness(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingEvent)

	err = bus.TriggerDomain(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingEvent)
}

func TestTrigger_TypedNilPointerEvent(t *testing.T) {
	registry, bus := newTestBus(t)
	var called bool

	RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[*orderPlacing](func(_ context.Context, e *orderPlacing) result.Result {
		called = true
		return result.Ok()
	}))
	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[*orderPlaced](func(_ context.Context, e *orderPlaced) error {
		called = true
		return nil
	}))

	_, err := bus.TriggerBusiness(context.Background(), (*orderPlacing)(nil))
	assert.ErrorIs(t, err, ErrMissingEvent)

	err = bus.TriggerDomain(context.Background(), (*orderPlaced)(nil))
	assert.ErrorIs(t, err, ErrMissingEvent)
	assert.False(t, called)

	res, err := bus.TriggerBusiness(context.Background(), &orderPlacing{Amount: 1})
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.True(t, called)
}

func TestTriggerDomain_RunsEveryHandler(t *testing.T) {
	registry, bus := newTestBus(t)
	var calls atomic.Int32
	started := make(chan struct{})

	// The first handler blocks until the second one started.
	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[orderPlaced](func(context.Context, orderPlaced) error {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			return errors.New("handlers did not run concurrently")
		}
		calls.Add(1)
		return nil
	}))
	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[orderPlaced](func(context.Context, orderPlaced) error {
		close(started)
		calls.Add(1)
		return nil
	}))

	err := bus.TriggerDomain(context.Background(), orderPlaced{ID: 1})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTriggerDomain_WaitsForAllAndReturnsError(t *testing.T) {
	registry, bus := newTestBus(t)
	boom := errors.New("boom")
	var finished atomic.Bool

	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[orderPlaced](func(context.Context, orderPlaced) error {
		return boom
	}))
	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[orderPlaced](func(context.Context, orderPlaced) error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	}))

	err := bus.TriggerDomain(context.Background(), orderPlaced{})

	assert.ErrorIs(t, err, boom)
	assert.True(t, finished.Load(), "every handler completes before the bus returns")
}

func TestTriggerDomain_PanicBecomesError(t *testing.T) {
	registry, bus := newTestBus(t)
	RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[orderPlaced](func(context.Context, orderPlaced) error {
		panic("kaboom")
	}))

	err := bus.TriggerDomain(context.Background(), orderPlaced{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}
