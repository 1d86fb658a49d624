package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	failCount  int32 // Atomic counter for failures
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		atomic.AddInt32(&m.failCount, 1)
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {
	// Not used in these tests
}

func (m *mockBus) GetCalls() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event{}, m.calls...)
}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestPublisher(bus Bus, maxRetries int, delay time.Duration, path string) *ResilientPublisher {
	return NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     maxRetries,
		RetryDelay:     delay,
		DeadLetterPath: path,
	})
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp := newTestPublisher(bus, 3, 10*time.Millisecond, tmpFile)
	defer rp.Shutdown(context.Background())

	testEvent := Event{
		Type:    Type("test_event"),
		Payload: map[string]interface{}{"test": "data"},
	}
	require.NoError(t, rp.Publish(context.Background(), testEvent))

	assert.Equal(t, 1, bus.CallCount(), "Event should be published once")
	assert.Equal(t, testEvent.Type, bus.GetCalls()[0].Type)

	// No dead-letter entry
	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	// Bus fails on first attempt, succeeds on second
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return attempt == 1
		},
	}

	rp := newTestPublisher(bus, 3, 10*time.Millisecond, tmpFile)

	testEvent := Event{
		Type:    Type("test_event"),
		Payload: map[string]interface{}{"id": "123"},
	}
	require.NoError(t, rp.Publish(context.Background(), testEvent))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 2, bus.CallCount(), "Should attempt twice: initial + retry")

	// No dead-letter entry
	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries for successful retry")
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	// Bus always fails
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return true
		},
	}

	rp := newTestPublisher(bus, 3, 5*time.Millisecond, tmpFile)

	testEvent := Event{
		Type:    Type("test_event"),
		Payload: map[string]interface{}{"id": "456"},
	}
	require.NoError(t, rp.Publish(context.Background(), testEvent))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// Should attempt: initial + 3 retries = 4 total
	assert.Equal(t, 4, bus.CallCount(), "Should exhaust all retries")

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.NotEmpty(t, content, "Dead-letter file should have entry")

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry), "Dead-letter should be valid JSON")

	assert.Equal(t, Type("test_event"), entry.Event.Type)
	assert.NotNil(t, entry.Event.Payload)
	assert.NotEmpty(t, entry.LastError)
	assert.Equal(t, 3, entry.Attempts)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	bus := &mockBus{}
	rp := newTestPublisher(bus, 3, 10*time.Millisecond, tmpFile)
	defer rp.Shutdown(context.Background())

	const numGoroutines = 10
	const eventsPerGoroutine = 5

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				testEvent := Event{
					Type:    Type("concurrent_test"),
					Payload: map[string]interface{}{"goroutine": goroutineID, "event": j},
				}
				rp.Publish(context.Background(), testEvent)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numGoroutines*eventsPerGoroutine, bus.CallCount(),
		"All concurrent events should be published")
}
