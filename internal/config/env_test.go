package config

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ED_TEST_STR", "value")
	if got := GetEnv("ED_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("ED_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ED_TEST_INT", "42")
	n, err := GetEnvInt("ED_TEST_INT", 7)
	if err != nil || n != 42 {
		t.Fatalf("GetEnvInt = %d, %v; want 42, nil", n, err)
	}

	n, err = GetEnvInt("ED_TEST_INT_UNSET", 7)
	if err != nil || n != 7 {
		t.Fatalf("GetEnvInt unset = %d, %v; want 7, nil", n, err)
	}

	t.Setenv("ED_TEST_INT_BAD", "forty")
	n, err = GetEnvInt("ED_TEST_INT_BAD", 7)
	if n != 7 {
		t.Fatalf("GetEnvInt bad = %d, want fallback 7", n)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ED_TEST_BOOL", "false")
	b, err := GetEnvBool("ED_TEST_BOOL", true)
	if err != nil || b {
		t.Fatalf("GetEnvBool = %v, %v; want false, nil", b, err)
	}

	t.Setenv("ED_TEST_BOOL", "")
	b, err = GetEnvBool("ED_TEST_BOOL", true)
	if err != nil || !b {
		t.Fatalf("GetEnvBool empty = %v, %v; want fallback true", b, err)
	}

	t.Setenv("ED_TEST_BOOL", "maybe")
	if _, err := GetEnvBool("ED_TEST_BOOL", true); err == nil {
		t.Fatal("expected error for malformed bool")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "warn")
	logger, err := NewLogger(&buf, "test")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") || !strings.Contains(out, "test") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	logger, err := NewLogger(io.Discard, "")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("level = %v, want info", logger.GetLevel())
	}
}
