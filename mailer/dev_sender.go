package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DevSender saves every message as <id>.html plus <id>.json metadata instead
// of sending it.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
}

func (d *DevSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Receipt{}, &ProviderError{Name: "dev_error", Message: fmt.Sprintf("create dir: %v", err)}
	}

	id := uuid.NewString()
	now := d.now()
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405")+"_"+id)

	if err := os.WriteFile(base+".html", []byte(msg.HTML), 0o644); err != nil {
		return Receipt{}, &ProviderError{Name: "dev_error", Message: fmt.Sprintf("write html: %v", err)}
	}

	meta, err := json.MarshalIndent(devMetadata{
		ID:        id,
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return Receipt{}, &ProviderError{Name: "dev_error", Message: fmt.Sprintf("marshal metadata: %v", err)}
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		return Receipt{}, &ProviderError{Name: "dev_error", Message: fmt.Sprintf("write metadata: %v", err)}
	}

	return Receipt{ID: id}, nil
}
