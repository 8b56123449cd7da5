package service

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestLogSinkLevels(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(&buf)

	sink.Infof("scanning %d files", 3)
	sink.Warnf("problem in %s", "A.java")
	sink.Errorf("cannot read %s", "B.java")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), out)
	}

	if lines[0] != "[INFO] scanning 3 files" {
		t.Errorf("Unexpected info line: %q", lines[0])
	}
	if lines[1] != "[WARN] problem in A.java" {
		t.Errorf("Unexpected warn line: %q", lines[1])
	}
	if lines[2] != "[ERROR] cannot read B.java" {
		t.Errorf("Unexpected error line: %q", lines[2])
	}
}

func TestLogSinkConcurrentAppends(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Warnf("message")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("Expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "[WARN] message" {
			t.Fatalf("Interleaved write detected: %q", line)
		}
	}
}

func TestCaptureLogSink(t *testing.T) {
	sink := NewCaptureLogSink()

	sink.Infof("a")
	sink.Warnf("b %d", 1)
	sink.Warnf("c")
	sink.Errorf("d")

	infos, warnings, errs := sink.All()
	if len(infos) != 1 || infos[0] != "a" {
		t.Errorf("Unexpected infos: %v", infos)
	}
	if len(warnings) != 2 || warnings[0] != "b 1" {
		t.Errorf("Unexpected warnings: %v", warnings)
	}
	if len(errs) != 1 || errs[0] != "d" {
		t.Errorf("Unexpected errors: %v", errs)
	}
}
