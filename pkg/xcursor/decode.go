package xcursor

import "encoding/binary"

// span returns data[off:off+n] or a ReadError. Offsets are absolute and
// computed in 64 bits so hostile positions cannot wrap.
func span(data []byte, off, n uint64) ([]byte, error) {
	end := off + n
	if end < off || end > uint64(len(data)) {
		return nil, &ReadError{Offset: off, Size: n, Len: len(data)}
	}
	return data[off:end], nil
}

func card32(data []byte, off uint64) (uint32, error) {
	b, err := span(data, off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// card32s decodes consecutive little-endian values from b, which must hold
// exactly len(dst)*4 bytes.
func card32s(dst []uint32, b []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}

func decodeHeader(data []byte) (Header, error) {
	b, err := span(data, 0, headerSize)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Magic:      binary.LittleEndian.Uint32(b[0:]),
		HeaderSize: binary.LittleEndian.Uint32(b[4:]),
		Version:    binary.LittleEndian.Uint32(b[8:]),
		NTOC:       binary.LittleEndian.Uint32(b[12:]),
	}, nil
}

func decodeTOCEntry(data []byte, off uint64) (TOCEntry, error) {
	b, err := span(data, off, tocEntrySize)
	if err != nil {
		return TOCEntry{}, err
	}
	return TOCEntry{
		Type:     binary.LittleEndian.Uint32(b[0:]),
		Subtype:  binary.LittleEndian.Uint32(b[4:]),
		Position: binary.LittleEndian.Uint32(b[8:]),
	}, nil
}

func decodeChunkHeader(data []byte, off uint64) (ChunkHeader, error) {
	b, err := span(data, off, chunkHeaderSize)
	if err != nil {
		return ChunkHeader{}, err
	}
	return ChunkHeader{
		HeaderSize: binary.LittleEndian.Uint32(b[0:]),
		Type:       binary.LittleEndian.Uint32(b[4:]),
		Subtype:    binary.LittleEndian.Uint32(b[8:]),
		Version:    binary.LittleEndian.Uint32(b[12:]),
	}, nil
}
