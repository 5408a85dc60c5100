package sse

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/event"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHub_TopicFiltering(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	mine := hub.Register(nil, "abcdef0123")
	other := hub.Register(nil, "0123456789")
	require.NotNil(t, mine)
	require.NotNil(t, other)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	require.True(t, hub.Broadcast(EventTypeSharedSupport, "abcdef0123", SharedSupportPayload{WishID: "abcdef0123", Increment: 3}))

	select {
	case evt := <-mine.EventChannel:
		assert.Equal(t, EventTypeSharedSupport, evt.Type)
		assert.Equal(t, "abcdef0123", evt.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected event for subscribed topic")
	}

	select {
	case evt := <-other.EventChannel:
		t.Fatalf("unexpected event for other topic: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_TypeFiltering(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register([]string{EventTypeSupported}, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(EventTypeSharedSupport, "abcdef0123", nil)
	hub.Broadcast(EventTypeSupported, "abcdef0123", nil)

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, EventTypeSupported, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("expected filtered event")
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(client.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-client.EventChannel
	assert.False(t, ok)
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()
	hub.Stop()

	for i := 0; i < 100; i++ {
		require.Nil(t, hub.Register(nil, ""))
	}
	assert.Zero(t, hub.ClientCount())
}

func TestHub_RegisterRacingStop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	clients := make(chan *Client, 64)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clients <- hub.Register(nil, "")
		}()
	}
	hub.Stop()
	wg.Wait()
	close(clients)

	// Whoever got in before Stop must have had its stream closed by it.
	for c := range clients {
		if c == nil {
			continue
		}
		_, ok := <-c.EventChannel
		assert.False(t, ok)
	}
}

func TestHub_RegisterIsImmediate(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil, "")
	require.NotNil(t, client)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeKeepalive})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: keepalive\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestSubscriber_ForwardsSharedSupport(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil, "abcdef0123")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewWishSharedSupportEvent("abcdef0123", 4.5, 12.5)))

	select {
	case evt := <-client.EventChannel:
		payload, ok := evt.Payload.(SharedSupportPayload)
		require.True(t, ok)
		assert.Equal(t, 12.5, payload.FriendLuck)
	case <-time.After(time.Second):
		t.Fatal("expected forwarded event")
	}
}

// syncRecorder is a ResponseWriter safe to read while the handler is writing.
type syncRecorder struct {
	mu     sync.Mutex
	header http.Header
	buf    bytes.Buffer
	code   int
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *syncRecorder) Header() http.Header { return r.header }

func (r *syncRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = code
}

func (r *syncRecorder) Flush() {}

func (r *syncRecorder) Body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func TestHandler_StreamsWishEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wish/events?wish_id=abcdef0123", nil).WithContext(ctx)
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Handler(hub)(rec, req)
	}()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(EventTypeSharedSupport, "abcdef0123", SharedSupportPayload{WishID: "abcdef0123", Increment: 2})

	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), "event: "+EventTypeSharedSupport)
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	body := rec.Body()
	assert.Contains(t, body, "event: "+EventTypeConnected)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestHandler_RejectsInvalidWishID(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wish/events?wish_id=nope", nil)
	Handler(hub)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrMsgInvalidWishID)
}
