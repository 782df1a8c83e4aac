package rdf

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestWarningsGoToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	if err := Serialize(io.Discard, NewGraph(nil), OptEncoding("latin-1"), OptLogger(logger)); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "latin-1") || !strings.Contains(out, string(WarnEncodingIgnored)) {
		t.Fatalf("expected encoding warning in log, got %q", out)
	}
}

func TestBuildOptionsDefaults(t *testing.T) {
	opts := buildOptions([]Option{OptContext(nil), OptMaxLineBytes(0)})
	if opts.Context == nil {
		t.Fatal("expected background context")
	}
	if opts.MaxLineBytes != DefaultMaxLineBytes {
		t.Fatalf("expected default line limit, got %d", opts.MaxLineBytes)
	}
}

func TestWarningString(t *testing.T) {
	w := baseIgnoredWarning("http://example.org/")
	if !strings.HasPrefix(w.String(), "BASE_IGNORED: ") {
		t.Fatalf("unexpected warning string %q", w.String())
	}
}
