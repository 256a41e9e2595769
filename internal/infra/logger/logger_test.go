package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestConfigureLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{level: "debug", want: logrus.DebugLevel},
		{level: "ERROR", want: logrus.ErrorLevel},
		{level: "chatty", want: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := logrus.New()
			Configure(l, &bytes.Buffer{}, &config.AppConfig{LogLevel: tt.level})
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestConfigureProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, &config.AppConfig{LogLevel: "info", Environment: "production"})

	l.WithField("component", "test").Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if line["msg"] != "hello" || line["level"] != "info" || line["time"] == nil {
		t.Errorf("unexpected JSON line: %v", line)
	}
}

func TestConfigureDevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, &config.AppConfig{LogLevel: "info", Environment: "development"})

	l.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "level=info") || !strings.Contains(out, `msg=hello`) {
		t.Errorf("unexpected text line: %q", out)
	}
}

func TestLogWritesToStdoutBeforeInit(t *testing.T) {
	if newLogger().Out != os.Stdout {
		t.Error("logger output should default to stdout")
	}
	if Log.Out != os.Stdout {
		t.Error("global Log output should be stdout before Init")
	}
}
