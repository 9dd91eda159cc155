// Package xcursor decodes X11 cursor files (XCursor).
//
// An XCursor file is a small header followed by a table of contents whose
// entries point, by absolute offset, at comment and image chunks. Parse turns
// a complete in-memory buffer into a validated Document or returns the first
// error it meets. All multi-byte integers are read little-endian.
package xcursor

// Format constants must never change.
const (
	// Magic is "Xcur" read as a little-endian uint32.
	Magic uint32 = 0x72756358

	CommentType    uint32 = 0xFFFE0001
	CommentVersion uint32 = 1

	ImageType    uint32 = 0xFFFD0002
	ImageVersion uint32 = 1

	// ImageMaxSize is an exclusive bound on image width and height.
	ImageMaxSize uint32 = 0x7FFF
)

const (
	headerSize      = 16
	tocEntrySize    = 12
	chunkHeaderSize = 16
	commentPrologue = chunkHeaderSize + 4
	// Pixels follow width, height, xhot, yhot and delay.
	imagePrologue   = chunkHeaderSize + 20
	pixelSize       = 4
)

type Header struct {
	Magic      uint32
	HeaderSize uint32
	Version    uint32
	NTOC       uint32
}

// TOCEntry is one table of contents record. Subtype is the nominal size for
// images and the CommentSubtype for comments.
type TOCEntry struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

// ChunkHeader is the prologue shared by every chunk.
type ChunkHeader struct {
	HeaderSize uint32
	Type       uint32
	Subtype    uint32
	Version    uint32
}

type Comment struct {
	ChunkHeader
	Length uint32
	String string
}

// Image is a single cursor frame. Pixels holds Width*Height premultiplied
// ARGB values in row-major order.
type Image struct {
	ChunkHeader
	Width  uint32
	Height uint32
	XHot   uint32
	YHot   uint32
	Delay  uint32
	Pixels []uint32
}

// Document is the decoded file. Comments and Images keep table of contents
// order, which need not match their layout in the file.
type Document struct {
	Comments []Comment
	Images   []Image
}
