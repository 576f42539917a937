package lru

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogEvictions(t *testing.T) {
	tests := map[string]struct {
		level   slog.Level
		wantLog bool
	}{
		"debug enabled": {
			level:   slog.LevelDebug,
			wantLog: true,
		},
		"info only": {
			level:   slog.LevelInfo,
			wantLog: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tc.level}))

			cache := MustNewLocked[string, int](1)
			cache.OnEvict(LogEvictions[string, int](logger))

			cache.Put("a", 1)
			r.Empty(buf.String())

			cache.Put("b", 2)
			if !tc.wantLog {
				r.Empty(buf.String())
				return
			}

			out := buf.String()
			r.Contains(out, `msg="lru entry evicted"`)
			r.Contains(out, "key=a")
			r.Contains(out, "value=1")
			r.NotContains(out, "key=b")
		})
	}
}

func TestLogEvictions_NilLogger(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	onEvict := LogEvictions[int, string](nil)
	onEvict(7, "seven")

	r.Contains(buf.String(), "key=7")
	r.Contains(buf.String(), "value=seven")
}
