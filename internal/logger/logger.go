// Package logger writes an append-only JSONL audit trail of scan and import
// decisions. Events are redacted before writing so the log itself cannot
// leak package secrets.
package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/knowmarket/packguard/internal/redact"
)

// AuditEvent is one scan or import decision.
type AuditEvent struct {
	EventID         string   `json:"event_id"`
	Timestamp       string   `json:"timestamp"`
	Action          string   `json:"action"` // "scan" or "import"
	PackageID       string   `json:"package_id"`
	PackageTitle    string   `json:"package_title,omitempty"`
	ContentType     string   `json:"content_type"`
	ThreatScore     float64  `json:"threat_score"`
	Safe            bool     `json:"safe_to_import"`
	Forced          bool     `json:"forced,omitempty"`
	TriggeredRules  []string `json:"triggered_rules,omitempty"`
	InsightsRemoved int      `json:"insights_removed,omitempty"`
}

// AuditLogger appends events to a JSONL file. Safe for concurrent use.
type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &AuditLogger{file: file}, nil
}

// Log assigns the event an id and timestamp, redacts free-text fields, and
// appends one JSON line.
func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	event.PackageTitle = redact.Redact(event.PackageTitle)
	event.TriggeredRules = redact.RedactAll(event.TriggeredRules)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
