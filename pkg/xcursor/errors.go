package xcursor

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidHeader         = errors.New("invalid header")
	ErrInvalidTOC            = errors.New("invalid table of contents")
	ErrInvalidCommentVersion = errors.New("invalid comment version")
	ErrInvalidImageVersion   = errors.New("invalid image version")
	ErrInvalidImageWidth     = errors.New("invalid image width")
	ErrInvalidImageHeight    = errors.New("invalid image height")
	ErrInvalidImageXHot      = errors.New("invalid image X hot")
	ErrInvalidImageYHot      = errors.New("invalid image Y hot")
)

// ReadError reports a read that would run past the end of the buffer.
type ReadError struct {
	Offset uint64
	Size   uint64
	Len    int
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %d bytes at offset %d: buffer holds %d bytes", e.Size, e.Offset, e.Len)
}

func (e *ReadError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// ChunkError attributes a failure to the table of contents entry that
// referenced the chunk.
type ChunkError struct {
	Index    int
	Type     uint32
	Position uint32
	Err      error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("toc entry %d (type 0x%08x at offset %d): %v", e.Index, e.Type, e.Position, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// Kind returns a short stable name for the class of a parse error, or
// "unknown" for errors that did not come from this package.
func Kind(err error) string {
	var re *ReadError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &re):
		return "read"
	case errors.Is(err, ErrInvalidHeader):
		return "invalid_header"
	case errors.Is(err, ErrInvalidTOC):
		return "invalid_toc"
	case errors.Is(err, ErrInvalidCommentVersion):
		return "invalid_comment_version"
	case errors.Is(err, ErrInvalidImageVersion):
		return "invalid_image_version"
	case errors.Is(err, ErrInvalidImageWidth):
		return "invalid_image_width"
	case errors.Is(err, ErrInvalidImageHeight):
		return "invalid_image_height"
	case errors.Is(err, ErrInvalidImageXHot):
		return "invalid_image_xhot"
	case errors.Is(err, ErrInvalidImageYHot):
		return "invalid_image_yhot"
	default:
		return "unknown"
	}
}
