package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportRepository stores rendered reports and hands out temporary links to them
type ReportRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

// GenerateReportPath creates a unique object path for a report:
// reports/<yyyy>/<uuid>_<name>.pdf
func GenerateReportPath(now time.Time, name string) string {
	filename := fmt.Sprintf("%s_%s.pdf", uuid.New().String(), sanitizeName(name))
	return path.Join("reports", fmt.Sprintf("%04d", now.Year()), filename)
}

func sanitizeName(name string) string {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".pdf")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "report"
	}
	return b.String()
}
