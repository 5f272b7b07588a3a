package logrus

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf})

	logger.Debug("hidden", nil)
	logger.Info("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})

	logger.Warn("HTML tier fallback", map[string]interface{}{
		"url":  "https://wheresthejump.com/jump-scares-in-it-2017/",
		"tier": "wp-api",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTML tier fallback", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "wp-api", entry["tier"])
	assert.Equal(t, "https://wheresthejump.com/jump-scares-in-it-2017/", entry["url"])
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		logged  []string
		dropped []string
	}{
		{level: "debug", logged: []string{"d-msg", "i-msg", "w-msg", "e-msg"}},
		{level: "warn", logged: []string{"w-msg", "e-msg"}, dropped: []string{"d-msg", "i-msg"}},
		{level: "error", logged: []string{"e-msg"}, dropped: []string{"d-msg", "i-msg", "w-msg"}},
		{level: "bogus", logged: []string{"i-msg"}, dropped: []string{"d-msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Options{Level: tt.level, Output: &buf})

			logger.Debug("d-msg", nil)
			logger.Info("i-msg", map[string]interface{}{})
			logger.Warn("w-msg", nil)
			logger.Error("e-msg", map[string]interface{}{"code": 502})

			out := buf.String()
			for _, m := range tt.logged {
				assert.True(t, strings.Contains(out, m), "expected %q in output", m)
			}
			for _, m := range tt.dropped {
				assert.False(t, strings.Contains(out, m), "did not expect %q in output", m)
			}
		})
	}
}
