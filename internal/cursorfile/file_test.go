package cursorfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/samcharles93/xcursor/internal/cursortest"
	"github.com/samcharles93/xcursor/pkg/xcursor"
)

func testCursor() []byte {
	return cursortest.Build(
		cursortest.Comment(xcursor.CommentOther, "left_ptr"),
		cursortest.Image(24, 2, 2, 1, 0, 0, cursortest.Solid(2, 2, 0xFF000000)),
	)
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "left_ptr")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	t.Parallel()

	f, err := Open(writeFile(t, testCursor()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			t.Fatalf("close: %v", cerr)
		}
	}()

	if f.Compressed {
		t.Fatalf("plain file reported as compressed")
	}
	if len(f.Document.Images) != 1 || f.Document.Comments[0].String != "left_ptr" {
		t.Fatalf("unexpected document: %+v", f.Document)
	}
	if !bytes.Equal(f.Data, testCursor()) {
		t.Fatalf("data does not match file contents")
	}
}

func TestOpenDocumentOutlivesClose(t *testing.T) {
	t.Parallel()

	f, err := Open(writeFile(t, testCursor()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	doc := f.Document
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if doc.Comments[0].String != "left_ptr" || doc.Images[0].Pixels[3] != 0xFF000000 {
		t.Fatalf("document changed after close: %+v", doc)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestOpenCompressed(t *testing.T) {
	t.Parallel()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	packed := enc.EncodeAll(testCursor(), nil)
	_ = enc.Close()

	f, err := Open(writeFile(t, packed))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	if !f.Compressed {
		t.Fatalf("expected compressed input to be detected")
	}
	if !bytes.Equal(f.Data, testCursor()) {
		t.Fatalf("decompressed data mismatch")
	}
	if f.Document.Images[0].XHot != 1 {
		t.Fatalf("unexpected image: %+v", f.Document.Images[0])
	}
}

func TestOpenReaderAt(t *testing.T) {
	t.Parallel()

	data := testCursor()
	f, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	if len(f.Document.Images) != 1 {
		t.Fatalf("expected one image, got %d", len(f.Document.Images))
	}

	if _, err := OpenReaderAt(bytes.NewReader(data), int64(len(data))+10); err == nil {
		t.Fatalf("expected error when size exceeds reader")
	}
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	_, err := Open(writeFile(t, nil))
	var re *xcursor.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("empty file: expected ReadError, got %v", err)
	}

	bad := testCursor()
	bad[0] = 'x'
	if _, err := Open(writeFile(t, bad)); !errors.Is(err, xcursor.ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}

	if _, err := Load(append([]byte{0x28, 0xB5, 0x2F, 0xFD}, 1, 2, 3)); err == nil {
		t.Fatalf("expected error for corrupt zstd frame")
	}
}
