package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DispatchPing(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")

	hub.Dispatch(client, []byte(`{"type":"ping"}`))

	messages := client.GetMessages()
	require.Len(t, messages, 1)
	var reply map[string]interface{}
	require.NoError(t, json.Unmarshal(messages[0], &reply))
	assert.Equal(t, "pong", reply["type"])
}

func TestHub_DispatchRoutesByType(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")

	var got []InboundMessage
	hub.Handle(MessageTypeNoticeDismiss, func(c ClientInterface, msg InboundMessage) {
		assert.Equal(t, "client-1", c.ID())
		got = append(got, msg)
	})

	hub.Dispatch(client, []byte(`{"type":"notice.dismiss","id":7}`))

	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Empty(t, client.GetMessages(), "handled messages get no reply")
}

func TestHub_DispatchDropsUnknownAndMalformed(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")

	called := false
	hub.Handle(MessageTypeNoticeDismiss, func(ClientInterface, InboundMessage) { called = true })

	for _, frame := range []string{`not json`, `{}`, `{"type":"transaction.delete","id":1}`} {
		hub.Dispatch(client, []byte(frame))
	}

	assert.False(t, called)
	assert.Empty(t, client.GetMessages())
}
