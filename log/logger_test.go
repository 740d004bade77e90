package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		out      Level
		expError bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" Warning ", Warning, false},
		{"ERROR", Error, false},
		{"loud", Notice, true},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError != (err != nil) {
			t.Fatalf("[spec %d] expected error to be %t; got %v", idx, s.expError, err)
		}
		if level != s.out {
			t.Fatalf("[spec %d] expected level %s; got %s", idx, s.out, level)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Infof("hidden %d", 1)
	logger.Warningf("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible 2") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with module name; got %q", out)
	}
}
