package xcursor

import "encoding/binary"

// testChunk is a chunk as it will be laid out by buildCursor. body is
// everything after the 16-byte chunk header.
type testChunk struct {
	tocType    uint32
	tocSubtype uint32
	header     ChunkHeader
	body       []byte
}

func le32(vals ...uint32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func commentChunk(subtype CommentSubtype, payload []byte) testChunk {
	body := append(le32(uint32(len(payload))), payload...)
	return testChunk{
		tocType:    CommentType,
		tocSubtype: uint32(subtype),
		header:     ChunkHeader{HeaderSize: 20, Type: CommentType, Subtype: uint32(subtype), Version: CommentVersion},
		body:       body,
	}
}

func imageChunk(size, w, h, xhot, yhot, delay uint32, pixels []uint32) testChunk {
	body := le32(w, h, xhot, yhot, delay)
	body = append(body, le32(pixels...)...)
	return testChunk{
		tocType:    ImageType,
		tocSubtype: size,
		header:     ChunkHeader{HeaderSize: 36, Type: ImageType, Subtype: size, Version: ImageVersion},
		body:       body,
	}
}

func solid(w, h, argb uint32) []uint32 {
	out := make([]uint32, w*h)
	for i := range out {
		out[i] = argb
	}
	return out
}

// buildCursor lays out header, table of contents and chunks back to back.
func buildCursor(chunks ...testChunk) []byte {
	out := le32(Magic, headerSize, 0x10000, uint32(len(chunks)))
	pos := uint32(headerSize + tocEntrySize*len(chunks))
	for _, c := range chunks {
		out = append(out, le32(c.tocType, c.tocSubtype, pos)...)
		pos += chunkHeaderSize + uint32(len(c.body))
	}
	for _, c := range chunks {
		out = append(out, le32(c.header.HeaderSize, c.header.Type, c.header.Subtype, c.header.Version)...)
		out = append(out, c.body...)
	}
	return out
}

// tocPosition returns the chunk position recorded for entry i.
func tocPosition(data []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(data[headerSize+i*tocEntrySize+8:])
}
