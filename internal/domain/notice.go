package domain

import "time"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a transient status message shown by the dashboard.
type Notice struct {
	ID        int64       `json:"id"`
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	ShownAt   time.Time   `json:"shownAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
