package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func initFileOnly(t *testing.T, lvl, path string) {
	t.Helper()
	cfg := FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}
	if err := InitWithOptions(Options{Level: lvl, File: cfg}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			initFileOnly(t, tt.level, logFile)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			logContent := readLog(t, logFile)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestSetLevelAfterInit(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "reload.log")
	initFileOnly(t, "warn", logFile)

	Info("before change")
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Debug("after change")

	logContent := readLog(t, logFile)
	if strings.Contains(logContent, "before change") {
		t.Error("info message logged while level was warn")
	}
	if !strings.Contains(logContent, "after change") {
		t.Error("debug message missing after raising verbosity")
	}
	if Level() != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", Level())
	}
}

func TestSetLevelInvalid(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := SetLevel(""); err != nil {
		t.Errorf("empty level should mean info, got %v", err)
	}
	if Level() != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", Level())
	}
}

func TestNamed(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	initFileOnly(t, "info", logFile)

	Named("sim").Info("grid resized")

	logContent := readLog(t, logFile)
	if !strings.Contains(logContent, "sim") || !strings.Contains(logContent, "grid resized") {
		t.Errorf("expected component name in output, got %q", logContent)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
