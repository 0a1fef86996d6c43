package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	content := `[{"wer":0.2,"del":0.1,"ins":0.05,"sub":0.05,"count":20},
{"wer":0.4,"del":0.2,"ins":0.1,"sub":0.1,"count":10}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write reports: %v", err)
	}

	s, err := summarize(path, []string{"wer", "del", "ins", "sub"})
	if err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	if s.Name != "baseline" || s.Reports != 2 || len(s.Stats) != 4 {
		t.Fatalf("summarize() = %+v", s)
	}

	var buf bytes.Buffer
	if err := write(&buf, "text", []Summary{s}); err != nil {
		t.Fatalf("write() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"== baseline (2 reports)",
		" WER: 30.00 % [ deletions: 15.00 % | insertions: 7.50 % | substitutions: 7.50 % ](count: 0)",
		"wer      mean 0.3000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := write(&buf, "yaml", []Summary{s}); err != nil {
		t.Fatalf("write(yaml) error = %v", err)
	}
	if !strings.Contains(buf.String(), "name: baseline") {
		t.Errorf("yaml output:\n%s", buf.String())
	}

	if err := write(&buf, "xml", nil); err == nil {
		t.Error("write(xml) should fail")
	}
}

func TestSummarizeRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	if err := os.WriteFile(path, []byte(`{"wer":0.1,"del":0.1,"ins":0,"sub":0,"count":3}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := summarize(path, []string{"mer"}); err == nil {
		t.Error("summarize() should fail for an unknown field")
	}
}
