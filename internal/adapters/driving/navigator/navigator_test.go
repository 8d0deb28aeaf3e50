package navigator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_VisitBroadcasts(t *testing.T) {
	nav := New()
	events, cancel := nav.Subscribe()
	defer cancel()

	require.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))

	select {
	case loc := <-events:
		assert.Equal(t, "https://console.example/callback", loc.OriginPath)
		assert.Equal(t, "abc123", loc.Code())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for navigation event")
	}
}

func TestNavigator_Visit_Invalid(t *testing.T) {
	nav := New()

	assert.Error(t, nav.Visit("not a url"))
	_, ok := nav.Current()
	assert.False(t, ok)
}

func TestNavigator_LateSubscriberGetsCurrent(t *testing.T) {
	nav := New()
	require.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))

	events, cancel := nav.Subscribe()
	defer cancel()

	select {
	case loc := <-events:
		assert.Equal(t, "abc123", loc.Code())
	case <-time.After(time.Second):
		t.Fatal("late subscriber did not receive the current location")
	}
}

func TestNavigator_SameURLRedelivered(t *testing.T) {
	nav := New()
	events, cancel := nav.Subscribe()
	defer cancel()

	require.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))
	require.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))

	for i := 0; i < 2; i++ {
		select {
		case <-events:
		case <-time.After(time.Second):
			t.Fatalf("event %d not delivered", i+1)
		}
	}
}

func TestNavigator_Current(t *testing.T) {
	nav := New()

	_, ok := nav.Current()
	assert.False(t, ok)

	require.NoError(t, nav.Visit("https://console.example/callback"))

	loc, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, "https://console.example/callback", loc.OriginPath)
}

func TestNavigator_FullBufferDoesNotBlockVisit(t *testing.T) {
	nav := New()
	events, cancel := nav.Subscribe()

	// Overfill the subscriber's buffer without draining; every Visit must
	// still return promptly.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			assert.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("visit blocked on a slow subscriber")
	}

	// Cancelling with undelivered events buffered must not panic a
	// concurrent broadcast.
	cancel()
	require.NoError(t, nav.Visit("https://console.example/callback?code=def456"))
	_ = events
}

func TestNavigator_CancelDuringBroadcasts(t *testing.T) {
	nav := New()

	stop := make(chan struct{})
	visits := make(chan struct{})
	go func() {
		defer close(visits)
		for {
			select {
			case <-stop:
				return
			default:
				_ = nav.Visit("https://console.example/callback?code=abc123")
			}
		}
	}()

	for i := 0; i < 50; i++ {
		_, cancel := nav.Subscribe()
		cancel()
	}

	close(stop)
	select {
	case <-visits:
	case <-time.After(2 * time.Second):
		t.Fatal("visitor goroutine did not stop")
	}
}

func TestNavigator_CancelStopsDelivery(t *testing.T) {
	nav := New()
	events, cancel := nav.Subscribe()
	cancel()

	require.NoError(t, nav.Visit("https://console.example/callback?code=abc123"))

	_, open := <-events
	assert.False(t, open)
}
