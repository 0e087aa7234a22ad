package server

import (
	"context"
	"testing"

	"github.com/teemow/meetslots/internal/logging"
)

// recordingLogger captures warning messages for assertions.
type recordingLogger struct {
	warnings []string
}

var _ logging.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Debug(msg string, args ...interface{}) {}
func (l *recordingLogger) Info(msg string, args ...interface{})  {}
func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(msg string, args ...interface{}) {}

func TestServerContext_Logger(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	if sc.Logger() == nil {
		t.Fatal("new server context should carry a default logger")
	}

	rec := &recordingLogger{}
	sc.SetLogger(rec)
	if sc.Logger() != logging.Logger(rec) {
		t.Error("SetLogger() should replace the logger")
	}

	sc.Logger().Warn("client unavailable", logging.KeyAccount, "work")
	if len(rec.warnings) != 1 || rec.warnings[0] != "client unavailable" {
		t.Errorf("warnings = %v, want [client unavailable]", rec.warnings)
	}
}
