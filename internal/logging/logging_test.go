package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "trailcost.log")
	logger, err := New(Config{Level: "debug", Format: "json", Output: fileName})
	if err != nil {
		t.Error(err)
		return
	}
	logger.Debug("encoding edges")
	_ = logger.Sync()
	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Error(err)
		return
	}
	if !strings.Contains(string(data), "encoding edges") {
		t.Errorf("Log file must contain message, but got '%s'", string(data))
	}
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(Config{Level: "chatty", Format: "console", Output: "stderr"})
	if err != nil {
		t.Error(err)
		return
	}
	if logger.Core().Enabled(-1) {
		t.Errorf("Debug level must be disabled for unknown level value")
	}
}
