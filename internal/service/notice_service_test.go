package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/testutil"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeBoard_ShowAndExpire(t *testing.T) {
	publisher := testutil.NewMockEventPublisher()
	board := NewNoticeBoard(30*time.Millisecond, publisher)
	defer board.Close()

	n := board.Success("Transaction added successfully!")
	assert.Equal(t, domain.NoticeSuccess, n.Level)
	assert.True(t, n.ExpiresAt.Equal(n.ShownAt.Add(30*time.Millisecond)))

	current, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, n.ID, current.ID)

	assert.Eventually(t, func() bool {
		_, ok := board.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"notice.shown", "notice.dismissed"}, publisher.EventTypes())
}

func TestNoticeBoard_NewerNoticeCancelsOlderTimer(t *testing.T) {
	board := NewNoticeBoard(200*time.Millisecond, nil)
	defer board.Close()

	board.Error("Failed to load transactions")
	time.Sleep(120 * time.Millisecond)
	second := board.Success("Transaction deleted!")
	time.Sleep(120 * time.Millisecond)

	// The first timer would have fired by now; the second notice must survive it.
	current, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
}

func TestNoticeBoard_DismissStaleIDIsNoOp(t *testing.T) {
	board := NewNoticeBoard(time.Minute, nil)
	defer board.Close()

	first := board.Success("one")
	second := board.Success("two")

	assert.False(t, board.Dismiss(first.ID))
	current, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)

	assert.True(t, board.Dismiss(second.ID))
	_, ok = board.Current()
	assert.False(t, ok)
}

func TestNoticeBoard_CloseStopsTimer(t *testing.T) {
	publisher := testutil.NewMockEventPublisher()
	board := NewNoticeBoard(20*time.Millisecond, publisher)

	board.Success("saved")
	board.Close()
	board.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"notice.shown"}, publisher.EventTypes())

	board.Success("after close")
	_, ok := board.Current()
	assert.False(t, ok)
}

func TestNewNoticeBoard_DefaultTTL(t *testing.T) {
	board := NewNoticeBoard(0, nil)
	defer board.Close()
	assert.Equal(t, DefaultNoticeTTL, board.ttl)
}

type socketClient struct{ id string }

func (c socketClient) ID() string             { return c.id }
func (c socketClient) Send(data []byte) error { return nil }
func (c socketClient) Close() error           { return nil }

func TestNoticeBoard_DismissFromSocket(t *testing.T) {
	hub := websocket.NewHub()
	board := NewNoticeBoard(time.Minute, hub)
	defer board.Close()
	hub.Handle(websocket.MessageTypeNoticeDismiss, board.HandleDismissMessage)

	stale := board.Success("Transaction added successfully!")
	n := board.Success("Transaction updated successfully!")

	hub.Dispatch(socketClient{id: "c1"}, []byte(fmt.Sprintf(`{"type":"notice.dismiss","id":%d}`, stale.ID)))
	current, ok := board.Current()
	require.True(t, ok, "stale ID leaves the current notice up")
	assert.Equal(t, n.ID, current.ID)

	hub.Dispatch(socketClient{id: "c1"}, []byte(fmt.Sprintf(`{"type":"notice.dismiss","id":%d}`, n.ID)))
	_, ok = board.Current()
	assert.False(t, ok)
}
