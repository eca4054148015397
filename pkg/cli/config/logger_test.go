package config_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/caskbump/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "DEBUG"},
		{level: "info"},
		{level: "Warn"},
		{level: "error"},
		{level: "", wantErr: true},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &config.Logger{Level: tt.level}
			logger.SetWriter(&buf)

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			result.Error("configured")
			gt.True(t, strings.Contains(buf.String(), "configured"))
		})
	}
}

func TestLogger_Configure_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "warn", JSON: true}
	logger.SetWriter(&buf)

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("hidden")
	result.Warn("shown")
	gt.False(t, strings.Contains(buf.String(), "hidden"))
	gt.True(t, strings.Contains(buf.String(), "shown"))
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "info", JSON: true}
	logger.SetWriter(&buf)

	result, err := logger.Configure()
	gt.NoError(t, err)
	result.Info("bump started", "cask", "user/tap/app")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Value(t, record["msg"]).Equal("bump started")
	gt.Value(t, record["cask"]).Equal("user/tap/app")
}

func TestLogger_Configure_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "info", JSON: true}
	logger.SetWriter(&buf)

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("token check", "value", "ghp_0123456789abcdef")
	gt.False(t, strings.Contains(buf.String(), "ghp_0123456789abcdef"))
	gt.True(t, strings.Contains(buf.String(), "token check"))
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}

	names := map[string]bool{}
	for _, flag := range logger.Flags() {
		names[flag.Names()[0]] = true
	}
	gt.True(t, names["log-level"])
	gt.True(t, names["log-json"])
}
