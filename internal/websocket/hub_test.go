package websocket

import (
	"context"
	"testing"
	"time"

	"imagine-algorithm/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func attach(h *Hub, sid uuid.UUID, buf int) *Client {
	c := &Client{Hub: h, SessionID: sid, Send: make(chan []byte, buf)}
	h.register <- c
	return c
}

func TestHub_SendTargetsSession(t *testing.T) {
	h := runHub(t)
	a, b := uuid.New(), uuid.New()
	tab1 := attach(h, a, 4)
	tab2 := attach(h, a, 4)
	other := attach(h, b, 4)

	require.Eventually(t, func() bool { return h.Connections(a) == 2 }, time.Second, time.Millisecond)
	h.Send(a, []byte("feed"))

	assert.Equal(t, []byte("feed"), <-tab1.Send)
	assert.Equal(t, []byte("feed"), <-tab2.Send)
	assert.Empty(t, other.Send)
}

func TestHub_FullBufferDropsPush(t *testing.T) {
	h := runHub(t)
	sid := uuid.New()
	c := attach(h, sid, 1)
	require.Eventually(t, func() bool { return h.Connections(sid) == 1 }, time.Second, time.Millisecond)

	h.Send(sid, []byte("one"))
	h.Send(sid, []byte("two"))

	assert.Len(t, c.Send, 1)
	assert.Equal(t, []byte("one"), <-c.Send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := runHub(t)
	sid := uuid.New()
	c := attach(h, sid, 1)

	h.unregister <- c

	_, open := <-c.Send
	assert.False(t, open)
	assert.Zero(t, h.Connections(sid))
}
