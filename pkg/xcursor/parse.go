package xcursor

import "fmt"

// ParseHeader decodes the file header and checks its magic. Header size and
// version are accepted as found so newer files still load.
func ParseHeader(data []byte) (Header, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return Header{}, err
	}
	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: invalid magic bytes 0x%08x, want 0x%08x", ErrInvalidHeader, h.Magic, Magic)
	}
	return h, nil
}

// ReadTOC reads the h.NTOC entries that follow the header. Entry positions
// are not checked against the buffer here.
func ReadTOC(data []byte, h Header) ([]TOCEntry, error) {
	n := uint64(h.NTOC)
	if avail := uint64(len(data)) / tocEntrySize; n > avail {
		n = avail
	}
	toc := make([]TOCEntry, 0, n)
	for i := range uint64(h.NTOC) {
		e, err := decodeTOCEntry(data, headerSize+i*tocEntrySize)
		if err != nil {
			return nil, fmt.Errorf("read toc entry %d: %w", i, err)
		}
		toc = append(toc, e)
	}
	return toc, nil
}

// Parse decodes a complete XCursor file. It fails on the first malformed
// field and never returns a partial Document.
func Parse(data []byte) (*Document, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	toc, err := ReadTOC(data, h)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for i, e := range toc {
		if err := doc.decodeChunk(data, e); err != nil {
			return nil, &ChunkError{Index: i, Type: e.Type, Position: e.Position, Err: err}
		}
	}
	return doc, nil
}

func (d *Document) decodeChunk(data []byte, e TOCEntry) error {
	off := uint64(e.Position)
	switch e.Type {
	case CommentType:
		c, err := parseComment(data, off)
		if err != nil {
			return err
		}
		if err := c.validate(); err != nil {
			return err
		}
		d.Comments = append(d.Comments, c)
	case ImageType:
		img, err := parseImage(data, off)
		if err != nil {
			return err
		}
		if err := img.validate(); err != nil {
			return err
		}
		d.Images = append(d.Images, img)
	default:
		return fmt.Errorf("%w: unknown chunk type 0x%08x", ErrInvalidTOC, e.Type)
	}
	return nil
}
