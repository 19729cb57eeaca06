package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesRegisteredClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.NotifyMatchCompleted(MatchCompletedEvent{
		ProjectName:     "Atlas",
		TotalCandidates: 3,
		SortedBy:        "bestFit",
		TopCandidate:    &TopResult{Name: "Ana", Score: 230, MatchPercentage: 100},
	})

	select {
	case msg := <-c.send:
		var evt MatchCompletedEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventMatchCompleted, evt.Type)
		assert.Equal(t, "Atlas", evt.ProjectName)
		assert.Equal(t, 3, evt.TotalCandidates)
		require.NotNil(t, evt.TopCandidate)
		assert.Equal(t, "Ana", evt.TopCandidate.Name)
		assert.NotEmpty(t, evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("expected broadcast message")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	hub.NotifyMatchCompleted(MatchCompletedEvent{})
	hub.Broadcast([]byte("x"))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RegisterAndUnregisterAfterShutdownDoNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)

	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	live := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(live)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	_, ok := <-live.send
	assert.False(t, ok)

	// More callers than the channel buffers hold.
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for i := 0; i < 200; i++ {
			hub.Unregister(live)
			late := &Client{hub: hub, send: make(chan []byte, 1)}
			hub.Register(late)
			if _, ok := <-late.send; ok {
				t.Error("late client send channel should be closed")
			}
		}
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Register/Unregister blocked after shutdown")
	}
}
