package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/RoriGen/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SetTemplateEvent - UI changed the selected template
type SetTemplateEvent struct {
	Name string
}

func (e SetTemplateEvent) UIEvent() {}

// SetInputEvent - UI edited the JSON input
type SetInputEvent struct {
	Input string
}

func (e SetInputEvent) UIEvent() {}

// LoadExampleEvent - UI asks core to replace the input with the example payload
type LoadExampleEvent struct{}

func (e LoadExampleEvent) UIEvent() {}

// GenerateEvent - UI requests a generation with the current form
type GenerateEvent struct{}

func (e GenerateEvent) UIEvent() {}

// ReloadCatalogEvent - UI asks for the template catalog to be fetched again
type ReloadCatalogEvent struct{}

func (e ReloadCatalogEvent) UIEvent() {}

// CopyResultEvent - UI asks core to copy the last result to the clipboard
type CopyResultEvent struct{}

func (e CopyResultEvent) UIEvent() {}

// DownloadResultEvent - UI asks core to save the last result to a file
type DownloadResultEvent struct{}

func (e DownloadResultEvent) UIEvent() {}

// StateUpdateEvent - Core pushes form state changes to UI
type StateUpdateEvent struct {
	State models.FormSnapshot
}

func (e StateUpdateEvent) CoreEvent() {}

// InputReplacedEvent - Core replaced the input text and the editor must follow
type InputReplacedEvent struct {
	Input string
}

func (e InputReplacedEvent) CoreEvent() {}

// NoticeEvent - Core reports the outcome of a post-result action
type NoticeEvent struct {
	Notice models.Notice
}

func (e NoticeEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrCoreFull    = errors.New("UI to Core channel is full")
	ErrUIFull      = errors.New("Core to UI channel is full")
	ErrClosed      = errors.New("event bus is closed")
)

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core. Each direction has its
// own circuit breaker so a stalled UI cannot block edits going to Core.
type EventBus struct {
	mu            sync.RWMutex
	closed        bool
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
	coreBreaker   *CircuitBreaker // UI to Core
	uiBreaker     *CircuitBreaker // Core to UI
}

func NewEventBus() *EventBus {
	return NewEventBusWithCapacity(100)
}

func NewEventBusWithCapacity(capacity int) *EventBus {
	return &EventBus{
		uiToCore:    make(chan UIEvent, capacity),
		coreToUI:    make(chan CoreEvent, capacity),
		coreBreaker: NewCircuitBreaker(5, 30*time.Second),
		uiBreaker:   NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(breaker *CircuitBreaker, operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	breaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrClosed
	}
	if eb.coreBreaker.IsOpen() {
		eb.reportError(eb.coreBreaker, "SendToCore", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.uiToCore <- event:
		eb.coreBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError(eb.coreBreaker, "SendToCore", ErrCoreFull)
		return ErrCoreFull
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrClosed
	}
	if eb.uiBreaker.IsOpen() {
		eb.reportError(eb.uiBreaker, "SendToUI", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.coreToUI <- event:
		eb.uiBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError(eb.uiBreaker, "SendToUI", ErrUIFull)
		return ErrUIFull
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// GetCircuitBreakerState reports the UI to Core breaker
func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.coreBreaker.State()
}

// GetUICircuitBreakerState reports the Core to UI breaker
func (eb *EventBus) GetUICircuitBreakerState() CircuitBreakerState {
	return eb.uiBreaker.State()
}

// Close closes both channels. Later sends return ErrClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
