package push

import (
	"context"
	"log"

	"fieldjobs/internal/notify"
)

// LogSender is the dev fallback push transport: it logs instead of sending.
// The APNs/FCM transport lives outside this service and plugs in behind the
// same notify.Sender seam.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (LogSender) Send(_ context.Context, n notify.Notification) error {
	log.Printf("[push][dev] user_id=%s title=%q body=%q data=%v", n.UserID, n.Title, n.Body, n.Data)
	return nil
}
