package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"num_market/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		level   slog.Level
		wantErr bool
	}{
		{name: "Debug", input: "debug", level: slog.LevelDebug},
		{name: "Upper case", input: "WARN", level: slog.LevelWarn},
		{name: "Error", input: "error", level: slog.LevelError},
		{name: "Unknown", input: "verbose", level: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			level, err := logx.ParseLevel(tc.input)
			if tc.wantErr {
				rq.Error(err)
			} else {
				rq.NoError(err)
			}

			rq.Equal(tc.level, level)
		})
	}
}

func TestNew(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := logx.New(&buf, slog.LevelInfo, false)

	log.Debug("hidden")
	log.Info("fetch failed", logx.Error(errors.New("boom")))

	out := buf.String()

	rq.NotContains(out, "hidden")
	rq.Contains(out, "fetch failed")
	rq.Contains(out, "boom")
}
