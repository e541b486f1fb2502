package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SetTemplateEvent{Name: "go-struct"}))
	require.NoError(t, eb.SendToUI(InputReplacedEvent{Input: "{}"}))

	assert.Equal(t, SetTemplateEvent{Name: "go-struct"}, <-eb.UIToCore())
	assert.Equal(t, InputReplacedEvent{Input: "{}"}, <-eb.CoreToUI())
}

func TestEventBus_FullChannelReportsError(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) {
		reported = append(reported, err)
	})

	require.NoError(t, eb.SendToUI(NoticeEvent{}))
	err := eb.SendToUI(NoticeEvent{})

	assert.ErrorIs(t, err, ErrUIFull)
	require.Len(t, reported, 1)
	assert.Equal(t, "SendToUI", reported[0].Operation)
	assert.Equal(t, "SendToUI: Core to UI channel is full", reported[0].Error())
}

func TestEventBus_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	require.NoError(t, eb.SendToCore(GenerateEvent{}))
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, eb.SendToCore(GenerateEvent{}), ErrCoreFull)
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	<-eb.UIToCore()
	assert.ErrorIs(t, eb.SendToCore(GenerateEvent{}), ErrCircuitOpen)
}

func TestEventBus_StalledUIDoesNotBlockCore(t *testing.T) {
	eb := NewEventBusWithCapacity(1)
	defer eb.Close()

	require.NoError(t, eb.SendToUI(StateUpdateEvent{}))
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrUIFull)
	}
	require.Equal(t, CircuitOpen, eb.GetUICircuitBreakerState())

	// Keystrokes still reach Core while the UI side is tripped
	require.NoError(t, eb.SendToCore(SetInputEvent{Input: `{"a":1}`}))
	assert.Equal(t, CircuitClosed, eb.GetCircuitBreakerState())
	assert.Equal(t, SetInputEvent{Input: `{"a":1}`}, <-eb.UIToCore())
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(ReloadCatalogEvent{}), ErrClosed)
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrClosed)

	_, ok := <-eb.CoreToUI()
	assert.False(t, ok)
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(2, 30*time.Second)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(31 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}
