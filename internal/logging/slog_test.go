package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	log := Init(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=dbg", "a=1", "level=INFO", "msg=inf", "level=WARN", "level=ERROR"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := Init(&buf, slog.LevelWarn)

	log.Info(context.Background(), "should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info below warn level to be dropped, got:\n%s", buf.String())
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := Init(&buf, slog.LevelInfo)

	log.With("collection", "sentinel-1").Info(context.Background(), "querying", "pages", 3)

	out := buf.String()
	for _, want := range []string{"msg=querying", "collection=sentinel-1", "pages=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	log := Nop()
	log.With("k", "v").Info(context.Background(), "ignored")
	log.Error(context.TODO(), "ignored")
}
