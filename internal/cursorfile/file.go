// Package cursorfile loads XCursor files from disk or readers and hands the
// bytes to the decoder.
package cursorfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"

	"github.com/samcharles93/xcursor/pkg/xcursor"
)

// MaxDecodedSize bounds the output of a compressed cursor file.
const MaxDecodedSize = 64 << 20

var (
	ErrTooLarge = errors.New("cursorfile: file too large")

	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecodedSize),
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		panic("cursorfile: zstd decoder initialization failed: " + err.Error())
	}
}

// File is a decoded cursor together with the bytes it was decoded from.
// Data is only valid until Close when the file was memory mapped.
type File struct {
	Data       []byte
	Document   *xcursor.Document
	Compressed bool
	mapped     []byte
}

// Open maps path read-only and decodes it. If mmap is unavailable it falls
// back to reading the whole file.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := st.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		return nil, ErrTooLarge
	}
	size := int(size64)
	if size == 0 {
		return Load(nil)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		cf, loadErr := Load(data)
		if loadErr != nil {
			_ = unix.Munmap(data)
			return nil, loadErr
		}
		cf.mapped = data
		return cf, nil
	}

	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// OpenReaderAt reads size bytes from r and decodes them.
func OpenReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, ErrTooLarge
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load decodes data, inflating it first when it is a zstd frame. The
// returned File aliases data for uncompressed input.
func Load(data []byte) (*File, error) {
	compressed := false
	if bytes.HasPrefix(data, zstdMagic) {
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(out) > MaxDecodedSize {
			return nil, ErrTooLarge
		}
		data = out
		compressed = true
	}

	doc, err := xcursor.Parse(data)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, Document: doc, Compressed: compressed}, nil
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	var err error
	if f.mapped != nil {
		err = unix.Munmap(f.mapped)
		f.mapped = nil
	}
	f.Data = nil
	return err
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}
