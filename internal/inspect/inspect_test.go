package inspect

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/xcursor/internal/cursortest"
	"github.com/samcharles93/xcursor/pkg/xcursor"
)

func testSummary(t *testing.T) Summary {
	t.Helper()
	data := cursortest.Build(
		cursortest.Comment(xcursor.CommentCopyright, "(c) test"),
		cursortest.Image(24, 2, 2, 0, 1, 30, cursortest.Solid(2, 2, 1)),
		cursortest.Image(24, 2, 2, 0, 1, 70, cursortest.Solid(2, 2, 2)),
		cursortest.Image(32, 3, 3, 2, 2, 0, cursortest.Solid(3, 3, 3)),
	)
	doc, err := xcursor.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return Summarize("wait", data, false, doc)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := testSummary(t)

	if s.Name != "wait" || s.Entries != 4 || s.Version != 0x10000 {
		t.Fatalf("header fields: %+v", s)
	}
	if len(s.Digest) != 64 {
		t.Fatalf("expected 32-byte hex digest, got %q", s.Digest)
	}
	if len(s.Images) != 3 || s.Images[2].NominalSize != 32 || s.Images[1].Delay != 70 {
		t.Fatalf("images: %+v", s.Images)
	}
	if len(s.Comments) != 1 || s.Comments[0].Kind != "copyright" {
		t.Fatalf("comments: %+v", s.Comments)
	}
	want := []SizeSummary{
		{NominalSize: 24, Frames: 2, DurationMS: 100},
		{NominalSize: 32, Frames: 1, DurationMS: 0},
	}
	if len(s.Sizes) != len(want) || s.Sizes[0] != want[0] || s.Sizes[1] != want[1] {
		t.Fatalf("sizes: got %+v want %+v", s.Sizes, want)
	}
}

func TestDigestStable(t *testing.T) {
	t.Parallel()
	if Digest([]byte("a")) != Digest([]byte("a")) {
		t.Fatalf("digest not deterministic")
	}
	if Digest([]byte("a")) == Digest([]byte("b")) {
		t.Fatalf("distinct inputs share a digest")
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()
	_, err := xcursor.Parse([]byte("nope, not a cursor"))
	s := Failure("broken", err)
	if s.Error == nil || s.Error.Kind != "invalid_header" {
		t.Fatalf("failure summary: %+v", s.Error)
	}

	s = Failure("other", errors.New("boom"))
	if s.Error.Kind != "unknown" {
		t.Fatalf("expected unknown kind, got %q", s.Error.Kind)
	}
}

func TestEncodeText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Encode(&buf, FormatText, testSummary(t)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"XCursor Inspect: wait", "--- Sizes ---", "24px:", "100 ms cycle", "copyright:", "hot=(2,2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEncodeStructured(t *testing.T) {
	t.Parallel()
	s := testSummary(t)

	var jbuf bytes.Buffer
	if err := Encode(&jbuf, FormatJSON, s); err != nil {
		t.Fatalf("encode json: %v", err)
	}
	var fromJSON Summary
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if fromJSON.Digest != s.Digest || len(fromJSON.Images) != 3 {
		t.Fatalf("json mismatch: %+v", fromJSON)
	}
	if !strings.Contains(jbuf.String(), `"delay_ms": 70`) {
		t.Fatalf("json field names: %s", jbuf.String())
	}

	var ybuf bytes.Buffer
	if err := Encode(&ybuf, FormatYAML, s); err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	var fromYAML Summary
	if err := yaml.Unmarshal(ybuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if fromYAML.Sizes[0].DurationMS != 100 {
		t.Fatalf("yaml mismatch: %+v", fromYAML.Sizes)
	}

	var c1, c2 bytes.Buffer
	if err := Encode(&c1, FormatCBOR, s); err != nil {
		t.Fatalf("encode cbor: %v", err)
	}
	if err := Encode(&c2, FormatCBOR, s); err != nil {
		t.Fatalf("encode cbor: %v", err)
	}
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatalf("cbor encoding is not deterministic")
	}
	var fromCBOR Summary
	if err := cbor.Unmarshal(c1.Bytes(), &fromCBOR); err != nil {
		t.Fatalf("decode cbor: %v", err)
	}
	if fromCBOR.Name != "wait" || fromCBOR.Comments[0].Text != "(c) test" {
		t.Fatalf("cbor mismatch: %+v", fromCBOR)
	}
}

func TestEncodeList(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := testSummary(t)
	if err := Encode(&buf, FormatJSON, s, Failure("bad", xcursor.ErrInvalidTOC)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out []Summary
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 2 || out[1].Error == nil || out[1].Error.Kind != "invalid_toc" {
		t.Fatalf("list mismatch: %+v", out)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, " yaml ": FormatYAML, "cbor": FormatCBOR} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q): got %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	if got := FormatBytes(512); got != "512 B" {
		t.Fatalf("got %q", got)
	}
	if got := FormatBytes(2048); got != "2.00 KiB" {
		t.Fatalf("got %q", got)
	}
}
