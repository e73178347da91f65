package mailer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventparadise/utils"

	"go.uber.org/zap"
)

// DevMailer implements Mailer for local development. It writes each email to
// a file in the configured directory instead of sending it.
type DevMailer struct {
	dir string
}

// NewDevMailer creates a development mailer that saves emails to disk.
func NewDevMailer(dir string) *DevMailer {
	return &DevMailer{dir: dir}
}

// Send writes the email to a timestamped text file.
func (m *DevMailer) Send(ctx context.Context, to, subject, body string) bool {
	logger := utils.GetLogger()

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		logger.Error("Failed to create mail outbox directory", zap.Error(err))
		return false
	}

	name := fmt.Sprintf("%s_%s.txt", time.Now().Format("2006_01_02_150405.000"), sanitizeFilename(subject))
	content := fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n", to, subject, body)
	if err := os.WriteFile(filepath.Join(m.dir, name), []byte(content), 0o644); err != nil {
		logger.Error("Failed to write email file", zap.Error(err))
		return false
	}

	logger.Info("Email written to outbox", zap.String("to", to), zap.String("file", name))
	return true
}

func sanitizeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "email"
	}
	return b.String()
}
