package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"judgment-analyzer/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func analysisServer(t *testing.T, got *models.AnalysisRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AnalysisResponse{JudgmentSummary: "Sentence reduced.", Analysis: "Appealable on sentence."})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyzeCommandText(t *testing.T) {
	var got models.AnalysisRequest
	srv := analysisServer(t, &got)

	out, err := execute(t, "", "analyze", "--endpoint", srv.URL, "--text", "The accused is convicted.")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.JudgmentText != "The accused is convicted." {
		t.Fatalf("request text = %q", got.JudgmentText)
	}
	if !strings.Contains(out, "Sentence reduced.") || !strings.Contains(out, "Appealable on sentence.") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestAnalyzeCommandStdin(t *testing.T) {
	var got models.AnalysisRequest
	srv := analysisServer(t, &got)

	if _, err := execute(t, "Judgment from stdin.\n", "analyze", "--endpoint", srv.URL); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.JudgmentText != "Judgment from stdin.\n" {
		t.Fatalf("request text = %q", got.JudgmentText)
	}
}

func TestAnalyzeCommandErrors(t *testing.T) {
	txt := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty text", []string{"analyze", "--text", "   "}, models.MsgEmptyInput},
		{"non-pdf file", []string{"analyze", "--file", txt}, models.MsgInvalidFileType},
		{"bad endpoint", []string{"analyze", "--endpoint", "not a url", "--text", "x"}, "endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "endpoint: http://files.example/analyze\ntimeout: 30s\nstart_dir: /srv/judgments\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a := &app{}
	root := newRootCmdFor(a)
	if err := root.ParseFlags([]string{"--config", path, "--endpoint", "http://flags.example/analyze", "--debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := a.loadConfig(root); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if a.cfg.Endpoint != "http://flags.example/analyze" {
		t.Errorf("endpoint = %q", a.cfg.Endpoint)
	}
	if a.cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", a.cfg.Timeout)
	}
	if a.cfg.StartDir != "/srv/judgments" {
		t.Errorf("start dir = %q", a.cfg.StartDir)
	}
	if a.cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", a.cfg.LogLevel)
	}
}

func TestConfigInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := execute(t, "", "config", "init", "--config", path, "--endpoint", "https://analysis.example/analyze"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "https://analysis.example/analyze") {
		t.Fatalf("config file:\n%s", data)
	}

	if _, err := execute(t, "", "config", "init", "--config", path); err == nil {
		t.Fatal("second init without --force should fail")
	}
}

func TestConfigPathIgnoresBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: ftp://nowhere\ntimeout: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := execute(t, "", "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("output = %q, want %q", out, path)
	}

	if _, err := execute(t, "", "analyze", "--config", path, "--text", "x"); err == nil {
		t.Fatal("analyze should still reject the broken config")
	}
}
