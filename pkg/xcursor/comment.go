package xcursor

import (
	"fmt"
	"unicode/utf8"
)

type CommentSubtype uint32

const (
	CommentCopyright CommentSubtype = 1
	CommentLicense   CommentSubtype = 2
	CommentOther     CommentSubtype = 3
)

func (s CommentSubtype) String() string {
	switch s {
	case CommentCopyright:
		return "copyright"
	case CommentLicense:
		return "license"
	case CommentOther:
		return "other"
	default:
		return fmt.Sprintf("subtype(%d)", uint32(s))
	}
}

func (c *Comment) Kind() CommentSubtype {
	return CommentSubtype(c.Subtype)
}

// parseComment decodes the comment chunk at off. A payload that is not valid
// UTF-8 yields an empty String rather than an error.
func parseComment(data []byte, off uint64) (Comment, error) {
	ch, err := decodeChunkHeader(data, off)
	if err != nil {
		return Comment{}, err
	}
	length, err := card32(data, off+chunkHeaderSize)
	if err != nil {
		return Comment{}, err
	}
	raw, err := span(data, off+commentPrologue, uint64(length))
	if err != nil {
		return Comment{}, err
	}

	s := ""
	if utf8.Valid(raw) {
		s = string(raw)
	}
	return Comment{ChunkHeader: ch, Length: length, String: s}, nil
}

func (c *Comment) validate() error {
	if c.Version != CommentVersion {
		return fmt.Errorf("%w: got %d want %d", ErrInvalidCommentVersion, c.Version, CommentVersion)
	}
	return nil
}
