// Package cursortest assembles XCursor files for tests.
package cursortest

import (
	"encoding/binary"

	"github.com/samcharles93/xcursor/pkg/xcursor"
)

// Chunk is one chunk plus the table of contents entry that points at it.
// Body is everything after the 16-byte chunk header.
type Chunk struct {
	Type    uint32
	Subtype uint32
	Version uint32
	Body    []byte
}

func Comment(subtype xcursor.CommentSubtype, text string) Chunk {
	return Chunk{
		Type:    xcursor.CommentType,
		Subtype: uint32(subtype),
		Version: xcursor.CommentVersion,
		Body:    append(LE32(uint32(len(text))), text...),
	}
}

func Image(size, w, h, xhot, yhot, delay uint32, pixels []uint32) Chunk {
	body := LE32(w, h, xhot, yhot, delay)
	return Chunk{
		Type:    xcursor.ImageType,
		Subtype: size,
		Version: xcursor.ImageVersion,
		Body:    append(body, LE32(pixels...)...),
	}
}

// Solid returns w*h copies of argb.
func Solid(w, h, argb uint32) []uint32 {
	out := make([]uint32, w*h)
	for i := range out {
		out[i] = argb
	}
	return out
}

func LE32(vals ...uint32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Build lays out the header, table of contents and chunks back to back.
func Build(chunks ...Chunk) []byte {
	const hdr, entry, chunkHdr = 16, 12, 16
	out := LE32(xcursor.Magic, hdr, 0x10000, uint32(len(chunks)))
	pos := uint32(hdr + entry*len(chunks))
	for _, c := range chunks {
		out = append(out, LE32(c.Type, c.Subtype, pos)...)
		pos += chunkHdr + uint32(len(c.Body))
	}
	for _, c := range chunks {
		out = append(out, LE32(chunkHdr+uint32(len(c.Body)), c.Type, c.Subtype, c.Version)...)
		out = append(out, c.Body...)
	}
	return out
}
