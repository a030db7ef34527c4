package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSONCompactAndPretty(t *testing.T) {
	v := map[string]any{"count": 1}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, v, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "{\"count\":1}\n" {
		t.Fatalf("unexpected compact output: %q", got)
	}

	buf.Reset()
	if err := WriteJSON(&buf, v, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "  \"count\": 1") {
		t.Fatalf("unexpected pretty output: %q", buf.String())
	}
}
