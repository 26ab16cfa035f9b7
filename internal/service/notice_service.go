package service

import (
	"sync"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// DefaultNoticeTTL is how long a notice stays up before it is dismissed.
const DefaultNoticeTTL = 3 * time.Second

// NoticeBoard holds the single transient notice shown by the dashboard.
// Each notice owns a timer; a newer notice or Close stops the pending one.
type NoticeBoard struct {
	ttl       time.Duration
	publisher websocket.EventPublisher

	mu      sync.Mutex
	current *domain.Notice
	timer   *time.Timer
	nextID  int64
	closed  bool
}

// NewNoticeBoard creates a NoticeBoard. A non-positive ttl falls back to DefaultNoticeTTL.
func NewNoticeBoard(ttl time.Duration, publisher websocket.EventPublisher) *NoticeBoard {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &NoticeBoard{ttl: ttl, publisher: publisher}
}

// Show replaces the current notice and schedules its dismissal
func (b *NoticeBoard) Show(level domain.NoticeLevel, message string) domain.Notice {
	b.mu.Lock()

	now := time.Now().UTC()
	b.nextID++
	notice := domain.Notice{
		ID:        b.nextID,
		Level:     level,
		Message:   message,
		ShownAt:   now,
		ExpiresAt: now.Add(b.ttl),
	}

	if b.closed {
		b.mu.Unlock()
		return notice
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = &notice
	id := notice.ID
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(id) })
	b.mu.Unlock()

	b.publisher.Publish(websocket.NoticeShown(notice))
	return notice
}

// Success shows a success notice
func (b *NoticeBoard) Success(message string) domain.Notice {
	return b.Show(domain.NoticeSuccess, message)
}

// Error shows an error notice
func (b *NoticeBoard) Error(message string) domain.Notice {
	return b.Show(domain.NoticeError, message)
}

// Current returns the visible notice, if any
func (b *NoticeBoard) Current() (domain.Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return domain.Notice{}, false
	}
	return *b.current, true
}

// Dismiss hides the notice with the given ID before its timer fires
func (b *NoticeBoard) Dismiss(id int64) bool {
	return b.expire(id)
}

// HandleDismissMessage dismisses the notice named by a notice.dismiss socket
// message. A stale ID is ignored.
func (b *NoticeBoard) HandleDismissMessage(client websocket.ClientInterface, msg websocket.InboundMessage) {
	if !b.Dismiss(msg.ID) {
		log.Debug().
			Str("client_id", client.ID()).
			Int64("notice_id", msg.ID).
			Msg("Notice already dismissed")
	}
}

// expire clears the notice only if it is still the one identified by id,
// so a timer that lost the race with a newer notice does nothing.
func (b *NoticeBoard) expire(id int64) bool {
	b.mu.Lock()
	if b.current == nil || b.current.ID != id {
		b.mu.Unlock()
		return false
	}
	notice := *b.current
	b.current = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	b.publisher.Publish(websocket.NoticeDismissed(notice))
	return true
}

// Close stops the pending timer. Later notices are not displayed.
func (b *NoticeBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
	log.Debug().Msg("Notice board closed")
}
